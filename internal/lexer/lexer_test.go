package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/khevencolino/MiniCompilador/internal/utils"
)

func tipos(t *testing.T, entrada string, opcoes ...Opcao) []TokenType {
	t.Helper()
	tokens, err := NovoLexer(entrada, opcoes...).Tokenizar()
	if err != nil {
		t.Fatalf("Tokenizar(%q) erro inesperado: %v", entrada, err)
	}
	var resultado []TokenType
	for _, token := range tokens {
		resultado = append(resultado, token.Type)
	}
	return resultado
}

func lexemas(t *testing.T, entrada string) []string {
	t.Helper()
	tokens, err := NovoLexer(entrada).Tokenizar()
	if err != nil {
		t.Fatalf("Tokenizar(%q) erro inesperado: %v", entrada, err)
	}
	var resultado []string
	for _, token := range tokens {
		resultado = append(resultado, token.Value)
	}
	return resultado
}

func erroLexico(t *testing.T, entrada string) *utils.CompilerError {
	t.Helper()
	_, err := NovoLexer(entrada).Tokenizar()
	if err == nil {
		t.Fatalf("Tokenizar(%q) sem erro, want erro léxico", entrada)
	}
	var erroCompilador *utils.CompilerError
	if !errors.As(err, &erroCompilador) {
		t.Fatalf("Tokenizar(%q) erro %T, want *utils.CompilerError", entrada, err)
	}
	if erroCompilador.Tipo != utils.ErroLexico {
		t.Fatalf("Tokenizar(%q) erro do tipo %s, want ErroLexico", entrada, erroCompilador.Tipo)
	}
	return erroCompilador
}

func TestOperadoresEParenteses(t *testing.T) {
	got := tipos(t, "a=b+c*(d-e)/f")
	want := []TokenType{
		IDENTIFIER, ASSIGN, IDENTIFIER, PLUS, IDENTIFIER, MULTIPLY,
		LPAREN, IDENTIFIER, MINUS, IDENTIFIER, RPAREN, DIVIDE,
		IDENTIFIER, EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tipos mismatch (-want +got):\n%s", diff)
	}
}

func TestOperadoresRelacionais(t *testing.T) {
	got := tipos(t, "x==y x!=y x<=y x>=y x<y x>y x=y :")
	want := []TokenType{
		IDENTIFIER, EQUAL, IDENTIFIER,
		IDENTIFIER, NOT_EQUAL, IDENTIFIER,
		IDENTIFIER, LESS_EQUAL, IDENTIFIER,
		IDENTIFIER, GREATER_EQUAL, IDENTIFIER,
		IDENTIFIER, LESS, IDENTIFIER,
		IDENTIFIER, GREATER, IDENTIFIER,
		IDENTIFIER, ASSIGN, IDENTIFIER,
		COLON, EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tipos mismatch (-want +got):\n%s", diff)
	}
}

func TestPosicoes(t *testing.T) {
	tokens, err := NovoLexer("x = 10\ny >= 2.5").Tokenizar()
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Type: IDENTIFIER, Value: "x", Position: NovaPosicao(1, 1, 0)},
		{Type: ASSIGN, Value: "=", Position: NovaPosicao(1, 3, 2)},
		{Type: INT_LIT, Value: "10", Position: NovaPosicao(1, 5, 4)},
		{Type: IDENTIFIER, Value: "y", Position: NovaPosicao(2, 1, 7)},
		{Type: GREATER_EQUAL, Value: ">=", Position: NovaPosicao(2, 3, 9)},
		{Type: FLOAT_LIT, Value: "2.5", Position: NovaPosicao(2, 6, 12)},
		{Type: EOF, Value: "", Position: NovaPosicao(2, 9, 15)},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestQuebrasDeLinhaPortaveis(t *testing.T) {
	tokens, err := NovoLexer("a\r\nb\rc\nd").Tokenizar()
	if err != nil {
		t.Fatal(err)
	}
	want := []Position{
		NovaPosicao(1, 1, 0),
		NovaPosicao(2, 1, 3),
		NovaPosicao(3, 1, 5),
		NovaPosicao(4, 1, 7),
		NovaPosicao(4, 2, 8),
	}
	var got []Position
	for _, token := range tokens {
		got = append(got, token.Position)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("posições mismatch (-want +got):\n%s", diff)
	}
}

func TestLiteraisNumericos(t *testing.T) {
	tests := []struct {
		entrada string
		tipo    TokenType
	}{
		{"123", INT_LIT},
		{"0", INT_LIT},
		{"123.456", FLOAT_LIT},
		{".456", FLOAT_LIT},
		{"0.5", FLOAT_LIT},
	}

	for _, tt := range tests {
		t.Run(tt.entrada, func(t *testing.T) {
			tokens, err := NovoLexer(tt.entrada).Tokenizar()
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			want := []Token{
				{Type: tt.tipo, Value: tt.entrada, Position: NovaPosicao(1, 1, 0)},
				{Type: EOF, Position: NovaPosicao(1, len(tt.entrada)+1, len(tt.entrada))},
			}
			if diff := cmp.Diff(want, tokens); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLiteraisNumericosMalformados(t *testing.T) {
	tests := []struct {
		entrada  string
		mensagem string
		coluna   int
	}{
		{"1.", "literal termina com ponto", 1},
		{"12.", "literal termina com ponto", 1},
		{"156.", "literal termina com ponto", 1},
		{"x = 12. + 1", "literal termina com ponto", 5},
		{"1.2.3", "literal com múltiplos pontos", 1},
		{".5.", "literal com múltiplos pontos", 1},
		{".", "literal começa com ponto sem dígito seguinte", 1},
		{"a . b", "literal começa com ponto sem dígito seguinte", 3},
	}

	for _, tt := range tests {
		t.Run(tt.entrada, func(t *testing.T) {
			erro := erroLexico(t, tt.entrada)
			if erro.Mensagem != tt.mensagem {
				t.Errorf("Mensagem = %q, want %q", erro.Mensagem, tt.mensagem)
			}
			if erro.Linha != 1 || erro.Coluna != tt.coluna {
				t.Errorf("posição = %d:%d, want 1:%d", erro.Linha, erro.Coluna, tt.coluna)
			}
		})
	}
}

func TestComentarios(t *testing.T) {
	tests := []struct {
		name    string
		entrada string
	}{
		{"linha", "abc # comentário\ndef"},
		{"bloco", "abc /* x \n y */ def"},
		{"bloco_com_asteriscos", "abc /** x * / **/ def"},
		{"linha_no_fim", "abc\ndef # fim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexemas(t, tt.entrada)
			if diff := cmp.Diff([]string{"abc", "def", ""}, got); diff != "" {
				t.Errorf("lexemas mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComentarioDeBlocoPreservaPosicao(t *testing.T) {
	tokens, err := NovoLexer("abc /* x \n y */ def").Tokenizar()
	if err != nil {
		t.Fatal(err)
	}
	if got := tokens[1].Position; got.Line != 2 || got.Column != 7 {
		t.Errorf("posição de def = %s, want linha 2, coluna 7", got)
	}
}

func TestComentarioDeBlocoNaoTerminado(t *testing.T) {
	erro := erroLexico(t, "abc /* sem fim")
	if erro.Linha != 1 || erro.Coluna != 5 {
		t.Errorf("posição = %d:%d, want 1:5", erro.Linha, erro.Coluna)
	}

	erro = erroLexico(t, "x\n  /* abre\n e nunca fecha")
	if erro.Linha != 2 || erro.Coluna != 3 {
		t.Errorf("posição = %d:%d, want 2:3", erro.Linha, erro.Coluna)
	}
}

func TestEntradaForaDeUTF8(t *testing.T) {
	tests := []struct {
		name    string
		entrada string
		linha   int
		coluna  int
	}{
		{"identificador", "a\xffb", 1, 2},
		{"dentro_de_string", "x\nIMPRIMIR(\"a\xffb\")", 2, 12},
		{"dentro_de_comentario", "LER x # c\xfe", 1, 10},
		{"depois_de_acento", "é\x80", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			erro := erroLexico(t, tt.entrada)
			if !strings.Contains(erro.Mensagem, "UTF-8") {
				t.Errorf("Mensagem = %q, want menção a UTF-8", erro.Mensagem)
			}
			if erro.Linha != tt.linha || erro.Coluna != tt.coluna {
				t.Errorf("posição = %d:%d, want %d:%d", erro.Linha, erro.Coluna, tt.linha, tt.coluna)
			}
		})
	}
}

func TestCaracteresInvalidos(t *testing.T) {
	tests := []struct {
		entrada string
		linha   int
		coluna  int
	}{
		{"@", 1, 1},
		{"a `", 1, 3},
		{"abé", 1, 3},
		{"x\n  $y", 2, 3},
		{"x ! y", 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.entrada, func(t *testing.T) {
			erro := erroLexico(t, tt.entrada)
			if erro.Linha != tt.linha || erro.Coluna != tt.coluna {
				t.Errorf("posição = %d:%d, want %d:%d", erro.Linha, erro.Coluna, tt.linha, tt.coluna)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	tokens, err := NovoLexer(`IMPRIMIR("oi \"mundo\"")`).Tokenizar()
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Type: IMPRIMIR, Value: "IMPRIMIR", Position: NovaPosicao(1, 1, 0)},
		{Type: LPAREN, Value: "(", Position: NovaPosicao(1, 9, 8)},
		{Type: STRING, Value: `"oi \"mundo\""`, Position: NovaPosicao(1, 10, 9)},
		{Type: RPAREN, Value: ")", Position: NovaPosicao(1, 24, 23)},
		{Type: EOF, Value: "", Position: NovaPosicao(1, 25, 24)},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestStringMultilinha(t *testing.T) {
	tokens, err := NovoLexer("\"a\nb\" x").Tokenizar()
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Type != STRING || tokens[0].Value != "\"a\nb\"" {
		t.Fatalf("primeiro token = %v, want STRING multilinha", tokens[0])
	}
	if got := tokens[1].Position; got.Line != 2 || got.Column != 4 {
		t.Errorf("posição de x = %s, want linha 2, coluna 4", got)
	}
}

func TestStringNaoTerminada(t *testing.T) {
	for _, entrada := range []string{`x = "abc`, `x = "abc\`, "x = \"abc\ndef"} {
		erro := erroLexico(t, entrada)
		if erro.Linha != 1 || erro.Coluna != 5 {
			t.Errorf("%q: posição = %d:%d, want 1:5", entrada, erro.Linha, erro.Coluna)
		}
	}
}

func TestDecodificarString(t *testing.T) {
	tests := []struct {
		lexema string
		want   string
	}{
		{`"simples"`, "simples"},
		{`""`, ""},
		{`"a\nb"`, "a\nb"},
		{`"a\tb\rc"`, "a\tb\rc"},
		{`"aspas \"dentro\""`, `aspas "dentro"`},
		{`"barra \\"`, `barra \`},
		{`"outro \q"`, `outro \q`},
	}

	for _, tt := range tests {
		if got := DecodificarString(tt.lexema); got != tt.want {
			t.Errorf("DecodificarString(%s) = %q, want %q", tt.lexema, got, tt.want)
		}
	}
}

func TestPalavrasChave(t *testing.T) {
	entrada := "DECLARACOES ALGORITMO LER IMPRIMIR SE ENTAO SENAO ENQUANTO INICIO FIM E OU INTEIRO REAL se Fim _SE print if else"
	got := tipos(t, entrada)
	want := []TokenType{
		DECLARACOES, ALGORITMO, LER, IMPRIMIR, SE, ENTAO, SENAO, ENQUANTO,
		INICIO, FIM, E, OU, INTEIRO, REAL,
		IDENTIFIER, IDENTIFIER, IDENTIFIER,
		PRINT, IF, ELSE,
		EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tipos mismatch (-want +got):\n%s", diff)
	}
}

func TestApelidosDesligados(t *testing.T) {
	got := tipos(t, "print if else SE", ComAliases(false))
	want := []TokenType{IDENTIFIER, IDENTIFIER, IDENTIFIER, SE, EOF}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tipos mismatch (-want +got):\n%s", diff)
	}
}

func TestEOFIdempotente(t *testing.T) {
	l := NovoLexer("  \n ")
	want := NovoToken(EOF, "", NovaPosicao(2, 2, 4))
	for i := 0; i < 3; i++ {
		token, err := l.ProximoToken()
		if err != nil {
			t.Fatalf("chamada %d: erro inesperado: %v", i, err)
		}
		if token != want {
			t.Errorf("chamada %d: token = %v, want %v", i, token, want)
		}
	}
}

func TestSequenciaTerminaComUmEOF(t *testing.T) {
	entradas := []string{"", "a", "a b c", "a == b != c <= d", "x = (y)"}
	for _, entrada := range entradas {
		tokens, err := NovoLexer(entrada).Tokenizar()
		if err != nil {
			t.Fatalf("%q: erro inesperado: %v", entrada, err)
		}
		eofs := 0
		for _, token := range tokens {
			if token.Type == EOF {
				eofs++
			}
		}
		if eofs != 1 || tokens[len(tokens)-1].Type != EOF {
			t.Errorf("%q: %d EOFs, último %v; want exatamente um EOF no fim", entrada, eofs, tokens[len(tokens)-1])
		}
	}
}

func TestTokensInterrompido(t *testing.T) {
	l := NovoLexer("a b c d")
	var vistos []string
	for token, err := range l.Tokens() {
		if err != nil {
			t.Fatal(err)
		}
		vistos = append(vistos, token.Value)
		if len(vistos) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, vistos); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	// A sequência continua de onde parou; não recomeça
	token, err := l.ProximoToken()
	if err != nil {
		t.Fatal(err)
	}
	if token.Value != "c" {
		t.Errorf("ProximoToken() = %v, want c", token)
	}
}

func TestTokensParaNoErro(t *testing.T) {
	var tokens []Token
	var erros int
	for token, err := range NovoLexer("a @ b").Tokens() {
		if err != nil {
			erros++
			continue
		}
		tokens = append(tokens, token)
	}
	if erros != 1 || len(tokens) != 1 {
		t.Errorf("tokens = %v, erros = %d; want um token e um erro", tokens, erros)
	}
}

func TestIdaEVolta(t *testing.T) {
	entrada := "x=1+y*(z-2.5)>=w E a!=b OU .5<c:LER IMPRIMIR(\"t x\")"
	tokens, err := NovoLexer(entrada).Tokenizar()
	if err != nil {
		t.Fatal(err)
	}

	var partes []string
	for _, token := range tokens {
		partes = append(partes, token.Value)
	}
	reconstruida := strings.Join(partes, " ")

	original := tipos(t, entrada)
	refeita := tipos(t, reconstruida)
	if diff := cmp.Diff(original, refeita); diff != "" {
		t.Errorf("tipos após ida e volta mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatarTokens(t *testing.T) {
	tokens, err := NovoLexer("x = 1").Tokenizar()
	if err != nil {
		t.Fatal(err)
	}
	var builder strings.Builder
	if err := FormatarTokens(&builder, tokens); err != nil {
		t.Fatal(err)
	}
	want := "IDENTIFIER 'x' @ 1:1\nASSIGN '=' @ 1:3\nINT_LIT '1' @ 1:5\nEOF '' @ 1:6\n"
	if diff := cmp.Diff(want, builder.String()); diff != "" {
		t.Errorf("saída mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := TokenType(-1).String(); got != "UNKNOWN" {
		t.Errorf("TokenType(-1) = %q, want UNKNOWN", got)
	}
	for tipo := IDENTIFIER; tipo <= EOF; tipo++ {
		if tipo.String() == "" || tipo.String() == "UNKNOWN" {
			t.Errorf("TokenType(%d) sem nome", int(tipo))
		}
	}
}
