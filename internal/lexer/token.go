package lexer

import "fmt"

// TokenType representa o tipo de token
type TokenType int

const (
	// Identificadores e literais
	IDENTIFIER TokenType = iota // Nomes de variáveis
	INT_LIT                     // Literal inteiro: 123
	FLOAT_LIT                   // Literal real: 1.5, .5
	STRING                      // Literal de texto: "olá"

	// Operadores aritméticos
	PLUS     // +
	MINUS    // -
	MULTIPLY // *
	DIVIDE   // /

	// Atribuição e operadores relacionais
	ASSIGN        // =
	EQUAL         // ==
	NOT_EQUAL     // !=
	GREATER       // >
	GREATER_EQUAL // >=
	LESS          // <
	LESS_EQUAL    // <=

	// Pontuação
	LPAREN // (
	RPAREN // )
	COLON  // :

	// Palavras-chave da gramática
	DECLARACOES
	ALGORITMO
	LER
	IMPRIMIR
	SE
	ENTAO
	SENAO
	ENQUANTO
	INICIO
	FIM
	E  // conjunção lógica
	OU // disjunção lógica

	// Tipos
	INTEIRO
	REAL

	// Apelidos em inglês aceitos pelo léxico
	PRINT
	IF
	ELSE

	EOF // Fim do arquivo
)

var nomesTokens = [...]string{
	IDENTIFIER:    "IDENTIFIER",
	INT_LIT:       "INT_LIT",
	FLOAT_LIT:     "FLOAT_LIT",
	STRING:        "STRING",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	MULTIPLY:      "MULTIPLY",
	DIVIDE:        "DIVIDE",
	ASSIGN:        "ASSIGN",
	EQUAL:         "EQUAL",
	NOT_EQUAL:     "NOT_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	COLON:         "COLON",
	DECLARACOES:   "DECLARACOES",
	ALGORITMO:     "ALGORITMO",
	LER:           "LER",
	IMPRIMIR:      "IMPRIMIR",
	SE:            "SE",
	ENTAO:         "ENTAO",
	SENAO:         "SENAO",
	ENQUANTO:      "ENQUANTO",
	INICIO:        "INICIO",
	FIM:           "FIM",
	E:             "E",
	OU:            "OU",
	INTEIRO:       "INTEIRO",
	REAL:          "REAL",
	PRINT:         "PRINT",
	IF:            "IF",
	ELSE:          "ELSE",
	EOF:           "EOF",
}

// String retorna o nome do tipo de token usado nos dumps e nas mensagens
func (t TokenType) String() string {
	if t < 0 || int(t) >= len(nomesTokens) {
		return "UNKNOWN"
	}
	return nomesTokens[t]
}

// Token representa um token encontrado no código fonte
type Token struct {
	Type     TokenType // Tipo do token
	Value    string    // Lexema exatamente como aparece na fonte
	Position Position  // Posição do primeiro caractere
}

// String retorna o token no formato TIPO 'lexema' @ linha:coluna
func (t Token) String() string {
	return fmt.Sprintf("%s '%s' @ %s", t.Type, t.Value, t.Position.Coordenadas())
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, posicao Position) Token {
	return Token{
		Type:     tipoToken,
		Value:    valor,
		Position: posicao,
	}
}

// EOperadorRelacional verifica se o token é um operador de comparação
func (t Token) EOperadorRelacional() bool {
	switch t.Type {
	case EQUAL, NOT_EQUAL, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL:
		return true
	}
	return false
}
