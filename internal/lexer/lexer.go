package lexer

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/khevencolino/MiniCompilador/internal/utils"
)

// Lexer representa o analisador léxico
type Lexer struct {
	leitor          *Leitor // Leitor com controle de posição
	comApelidos     bool    // Aceita print/if/else como palavras-chave
	erroCodificacao error   // Byte fora de UTF-8 encontrado na entrada
}

// Opcao configura um Lexer na criação
type Opcao func(*Lexer)

// ComAliases liga ou desliga os apelidos em inglês (print, if, else)
func ComAliases(ativo bool) Opcao {
	return func(l *Lexer) {
		l.comApelidos = ativo
	}
}

// NovoLexer cria um novo analisador léxico
func NovoLexer(entrada string, opcoes ...Opcao) *Lexer {
	l := &Lexer{
		leitor:      NovoLeitor(entrada),
		comApelidos: true,
	}
	for _, opcao := range opcoes {
		opcao(l)
	}
	if i := utils.PrimeiroByteInvalido([]byte(entrada)); i >= 0 {
		l.erroCodificacao = erroDeCodificacao(entrada, i)
	}
	return l
}

// erroDeCodificacao aponta a linha e a coluna do byte inválido em indice.
// A entrada é recusada por inteiro antes do primeiro token.
func erroDeCodificacao(entrada string, indice int) error {
	prefixo := NovoLeitor(entrada[:indice])
	for !prefixo.NoFim() {
		if !prefixo.ConsumirQuebraLinha() {
			prefixo.Avancar()
		}
	}
	posicao := prefixo.Posicao()
	return utils.NovoErroLexico(
		fmt.Sprintf("byte inválido 0x%02x: entrada não está em UTF-8", entrada[indice]),
		posicao.Line,
		posicao.Column,
	)
}

// Tokenizar converte toda a entrada em uma lista de tokens terminada em EOF
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token
	for token, err := range l.Tokens() {
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// Tokens produz a sequência de tokens sob demanda. A sequência termina
// no primeiro EOF ou no primeiro erro e não recomeça: uma nova varredura
// exige um novo Lexer.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := l.ProximoToken()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !yield(token, nil) || token.Type == EOF {
				return
			}
		}
	}
}

// ProximoToken retorna o próximo token. No fim da entrada devolve EOF
// quantas vezes for chamado.
func (l *Lexer) ProximoToken() (Token, error) {
	if l.erroCodificacao != nil {
		return Token{}, l.erroCodificacao
	}
	r := l.leitor
	for {
		l.pularEspacos()

		posicao := r.Posicao()
		if r.NoFim() {
			return NovoToken(EOF, "", posicao), nil
		}

		c := r.Espiar()
		switch {
		case c == '#':
			l.pularComentarioLinha()
			continue
		case c == '/' && r.EspiarProximo() == '*':
			if err := l.pularComentarioBloco(posicao); err != nil {
				return Token{}, err
			}
			continue
		case eLetra(c):
			return l.lerIdentificador(posicao), nil
		case eDigito(c) || c == '.':
			return l.lerNumero(posicao)
		case c == '"':
			return l.lerString(posicao)
		case c == '=' || c == '!' || c == '>' || c == '<':
			return l.lerOperador(posicao)
		}

		r.Avancar()
		if tipo, ok := simbolosSimples[c]; ok {
			return NovoToken(tipo, string(c), posicao), nil
		}
		return Token{}, utils.NovoErroLexico(fmt.Sprintf("caractere inválido '%c'", c), posicao.Line, posicao.Column)
	}
}

// pularEspacos descarta espaços, tabulações e quebras de linha
func (l *Lexer) pularEspacos() {
	for {
		switch l.leitor.Espiar() {
		case ' ', '\t':
			l.leitor.Avancar()
		default:
			if !l.leitor.ConsumirQuebraLinha() {
				return
			}
		}
	}
}

// pularComentarioLinha descarta de '#' até o fim da linha, sem consumir a quebra
func (l *Lexer) pularComentarioLinha() {
	for !l.leitor.NoFim() && !eQuebraLinha(l.leitor.Espiar()) {
		l.leitor.Avancar()
	}
}

// pularComentarioBloco descarta de '/*' até '*/'
func (l *Lexer) pularComentarioBloco(inicio Position) error {
	r := l.leitor
	r.Avancar()
	r.Avancar()
	for {
		if r.NoFim() {
			return utils.NovoErroLexico("comentário de bloco não terminado", inicio.Line, inicio.Column)
		}
		if r.Espiar() == '*' && r.EspiarProximo() == '/' {
			r.Avancar()
			r.Avancar()
			return nil
		}
		if !r.ConsumirQuebraLinha() {
			r.Avancar()
		}
	}
}

// lerIdentificador consome a maior sequência de letras, dígitos e '_'
func (l *Lexer) lerIdentificador(inicio Position) Token {
	r := l.leitor
	for eLetra(r.Espiar()) || eDigito(r.Espiar()) {
		r.Avancar()
	}
	lexema := r.Trecho(inicio.Offset)
	tipo, _ := BuscarPalavraChave(lexema, l.comApelidos)
	return NovoToken(tipo, lexema, inicio)
}

// lerNumero reconhece 123, 123.456 e .456. Erros apontam para o início do literal.
func (l *Lexer) lerNumero(inicio Position) (Token, error) {
	r := l.leitor
	erro := func(mensagem string) (Token, error) {
		return Token{}, utils.NovoErroLexico(mensagem, inicio.Line, inicio.Column)
	}

	if r.Espiar() == '.' && !eDigito(r.EspiarProximo()) {
		r.Avancar()
		return erro("literal começa com ponto sem dígito seguinte")
	}

	temPonto := false
	if r.Espiar() == '.' {
		r.Avancar()
		temPonto = true
	}
	l.lerDigitos()

	if !temPonto && r.Espiar() == '.' {
		r.Avancar()
		if !eDigito(r.Espiar()) {
			return erro("literal termina com ponto")
		}
		temPonto = true
		l.lerDigitos()
	}

	if r.Espiar() == '.' {
		return erro("literal com múltiplos pontos")
	}

	tipo := INT_LIT
	if temPonto {
		tipo = FLOAT_LIT
	}
	return NovoToken(tipo, r.Trecho(inicio.Offset), inicio), nil
}

func (l *Lexer) lerDigitos() {
	for eDigito(l.leitor.Espiar()) {
		l.leitor.Avancar()
	}
}

// lerString consome um literal entre aspas. O lexema inclui as aspas e as
// sequências de escape sem tradução.
func (l *Lexer) lerString(inicio Position) (Token, error) {
	r := l.leitor
	naoTerminada := utils.NovoErroLexico("string não terminada", inicio.Line, inicio.Column)

	r.Avancar()
	for {
		switch c := r.Espiar(); {
		case c == FimEntrada:
			return Token{}, naoTerminada
		case c == '"':
			r.Avancar()
			return NovoToken(STRING, r.Trecho(inicio.Offset), inicio), nil
		case c == '\\':
			r.Avancar()
			if r.NoFim() {
				return Token{}, naoTerminada
			}
			if !r.ConsumirQuebraLinha() {
				r.Avancar()
			}
		case eQuebraLinha(c):
			r.ConsumirQuebraLinha()
		default:
			r.Avancar()
		}
	}
}

// lerOperador decide entre a forma de um e de dois caracteres
func (l *Lexer) lerOperador(inicio Position) (Token, error) {
	r := l.leitor
	c := r.Avancar()
	duplo := r.Casar('=')

	switch c {
	case '=':
		if duplo {
			return NovoToken(EQUAL, "==", inicio), nil
		}
		return NovoToken(ASSIGN, "=", inicio), nil
	case '!':
		if duplo {
			return NovoToken(NOT_EQUAL, "!=", inicio), nil
		}
		return Token{}, utils.NovoErroLexico("'!' inesperado", inicio.Line, inicio.Column)
	case '>':
		if duplo {
			return NovoToken(GREATER_EQUAL, ">=", inicio), nil
		}
		return NovoToken(GREATER, ">", inicio), nil
	default:
		if duplo {
			return NovoToken(LESS_EQUAL, "<=", inicio), nil
		}
		return NovoToken(LESS, "<", inicio), nil
	}
}

// DecodificarString remove as aspas de um lexema STRING e traduz as
// sequências \" \n \r \t e \\. Qualquer outro escape é mantido como está.
func DecodificarString(lexema string) string {
	conteudo := strings.TrimSuffix(strings.TrimPrefix(lexema, `"`), `"`)
	if !strings.ContainsRune(conteudo, '\\') {
		return conteudo
	}

	var builder strings.Builder
	runas := []rune(conteudo)
	for i := 0; i < len(runas); i++ {
		if runas[i] != '\\' || i+1 == len(runas) {
			builder.WriteRune(runas[i])
			continue
		}
		i++
		switch runas[i] {
		case '"':
			builder.WriteRune('"')
		case 'n':
			builder.WriteRune('\n')
		case 'r':
			builder.WriteRune('\r')
		case 't':
			builder.WriteRune('\t')
		case '\\':
			builder.WriteRune('\\')
		default:
			builder.WriteRune('\\')
			builder.WriteRune(runas[i])
		}
	}
	return builder.String()
}

// FormatarTokens escreve um token por linha no formato TIPO 'lexema' @ linha:coluna
func FormatarTokens(w io.Writer, tokens []Token) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintln(w, token); err != nil {
			return err
		}
	}
	return nil
}
