package lexer

// palavrasChave mapeia a grafia exata de cada palavra reservada ao seu tipo
var palavrasChave = map[string]TokenType{
	"DECLARACOES": DECLARACOES,
	"ALGORITMO":   ALGORITMO,
	"LER":         LER,
	"IMPRIMIR":    IMPRIMIR,
	"SE":          SE,
	"ENTAO":       ENTAO,
	"SENAO":       SENAO,
	"ENQUANTO":    ENQUANTO,
	"INICIO":      INICIO,
	"FIM":         FIM,
	"E":           E,
	"OU":          OU,
	"INTEIRO":     INTEIRO,
	"REAL":        REAL,
}

// apelidos são grafias em inglês mantidas por compatibilidade
var apelidos = map[string]TokenType{
	"print": PRINT,
	"if":    IF,
	"else":  ELSE,
}

// simbolosSimples são os tokens de um único caractere sem lookahead
var simbolosSimples = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': MULTIPLY,
	'/': DIVIDE,
	'(': LPAREN,
	')': RPAREN,
	':': COLON,
}

// BuscarPalavraChave retorna o tipo da palavra reservada, se houver.
// A comparação diferencia maiúsculas de minúsculas.
func BuscarPalavraChave(lexema string, comApelidos bool) (TokenType, bool) {
	if tipo, ok := palavrasChave[lexema]; ok {
		return tipo, true
	}
	if comApelidos {
		if tipo, ok := apelidos[lexema]; ok {
			return tipo, true
		}
	}
	return IDENTIFIER, false
}
