package parser

import (
	"fmt"

	"github.com/khevencolino/MiniCompilador/internal/lexer"
	"github.com/khevencolino/MiniCompilador/internal/utils"
)

// Parser representa o analisador sintático descendente recursivo.
// Decide sempre com um único token de lookahead e nunca retrocede.
type Parser struct {
	tokens             []lexer.Token
	posicaoAtual       int
	profundidade       int // Aninhamento corrente de comandos e parênteses
	profundidadeMaxima int // 0 desliga o limite
}

// Opcao configura um Parser na criação
type Opcao func(*Parser)

// ComProfundidadeMaxima limita o aninhamento de comandos e expressões entre parênteses
func ComProfundidadeMaxima(limite int) Opcao {
	return func(p *Parser) {
		p.profundidadeMaxima = limite
	}
}

// NovoParser cria um novo analisador sintático
func NovoParser(tokens []lexer.Token, opcoes ...Opcao) *Parser {
	p := &Parser{
		tokens:       tokens,
		posicaoAtual: 0,
	}
	for _, opcao := range opcoes {
		opcao(p)
	}
	return p
}

// AnalisarPrograma consome todos os tokens e retorna a raiz "programa".
//
//	programa : ':' DECLARACOES listaDeclaracoes ':' ALGORITMO listaComandos EOF
func (p *Parser) AnalisarPrograma() (*No, error) {
	inicio, err := p.consumir(lexer.COLON, "Esperava ':' antes de DECLARACOES")
	if err != nil {
		return nil, err
	}
	if _, err := p.consumir(lexer.DECLARACOES, "Esperava 'DECLARACOES'"); err != nil {
		return nil, err
	}
	declaracoes, err := p.analisarListaDeclaracoes()
	if err != nil {
		return nil, err
	}

	if _, err := p.consumir(lexer.COLON, "Esperava ':' antes de ALGORITMO"); err != nil {
		return nil, err
	}
	if _, err := p.consumir(lexer.ALGORITMO, "Esperava 'ALGORITMO'"); err != nil {
		return nil, err
	}
	comandos, err := p.analisarListaComandos()
	if err != nil {
		return nil, err
	}

	if _, err := p.consumir(lexer.EOF, "Esperava fim do arquivo"); err != nil {
		return nil, err
	}
	return NovoNo(PROGRAMA, inicio, declaracoes, comandos), nil
}

// listaDeclaracoes : declaracao*
func (p *Parser) analisarListaDeclaracoes() (*No, error) {
	lista := NovoNo(LISTA_DECLARACOES, p.tokenAtual())
	for p.verificar(lexer.IDENTIFIER) {
		declaracao, err := p.analisarDeclaracao()
		if err != nil {
			return nil, err
		}
		lista.Adicionar(declaracao)
	}
	return lista, nil
}

// declaracao : IDENTIFIER ':' tipoVar
func (p *Parser) analisarDeclaracao() (*No, error) {
	nome, err := p.consumir(lexer.IDENTIFIER, "Esperava nome de variável na declaração")
	if err != nil {
		return nil, err
	}
	if _, err := p.consumir(lexer.COLON, "Esperava ':' depois do nome da variável"); err != nil {
		return nil, err
	}
	tipo, err := p.analisarTipo()
	if err != nil {
		return nil, err
	}
	return NovoNo(DECLARACAO, nome, NovaFolha(ID, nome.Value, nome), tipo), nil
}

// tipoVar : INTEIRO | REAL
func (p *Parser) analisarTipo() (*No, error) {
	if p.casar(lexer.INTEIRO, lexer.REAL) {
		token := p.tokenAnterior()
		return NovaFolha(TIPO, token.Value, token), nil
	}
	return nil, p.erroEsperado("Esperava tipo 'INTEIRO' ou 'REAL'")
}

// listaComandos : comando*   (para em FIM, SENAO ou EOF)
func (p *Parser) analisarListaComandos() (*No, error) {
	lista := NovoNo(LISTA_COMANDOS, p.tokenAtual())
	for !p.chegouAoFim() && !p.verificar(lexer.FIM, lexer.SENAO) {
		comando, err := p.analisarComando()
		if err != nil {
			return nil, err
		}
		lista.Adicionar(comando)
	}
	return lista, nil
}

// comando : atribuicao | entrada | saida | condicao | repeticao | bloco
func (p *Parser) analisarComando() (*No, error) {
	if err := p.entrar(); err != nil {
		return nil, err
	}
	defer p.sair()

	switch p.tokenAtual().Type {
	case lexer.IDENTIFIER:
		return p.analisarAtribuicao()
	case lexer.LER:
		return p.analisarEntrada()
	case lexer.IMPRIMIR, lexer.PRINT:
		return p.analisarSaida()
	case lexer.SE:
		return p.analisarCondicao()
	case lexer.ENQUANTO:
		return p.analisarRepeticao()
	case lexer.INICIO:
		return p.analisarBloco()
	default:
		return nil, p.erroEsperado("Comando inválido")
	}
}

// atribuicao : IDENTIFIER '=' expressaoAritmetica
func (p *Parser) analisarAtribuicao() (*No, error) {
	nome, err := p.consumir(lexer.IDENTIFIER, "Esperava identificador no comando de atribuição")
	if err != nil {
		return nil, err
	}
	sinal, err := p.consumir(lexer.ASSIGN, "Esperava '='")
	if err != nil {
		return nil, err
	}
	expressao, err := p.analisarExpressaoAritmetica()
	if err != nil {
		return nil, err
	}
	return NovoNo(ATRIBUICAO, sinal, NovaFolha(VARIAVEL, nome.Value, nome), expressao), nil
}

// entrada : LER IDENTIFIER
func (p *Parser) analisarEntrada() (*No, error) {
	if _, err := p.consumir(lexer.LER, "Esperava 'LER'"); err != nil {
		return nil, err
	}
	nome, err := p.consumir(lexer.IDENTIFIER, "Esperava identificador após LER")
	if err != nil {
		return nil, err
	}
	return NovaFolha(LEITURA, nome.Value, nome), nil
}

// saida : (IMPRIMIR | print) '(' (IDENTIFIER | STRING) ')'
func (p *Parser) analisarSaida() (*No, error) {
	if !p.casar(lexer.IMPRIMIR, lexer.PRINT) {
		return nil, p.erroEsperado("Esperava IMPRIMIR/print")
	}
	comando := p.tokenAnterior()
	if _, err := p.consumir(lexer.LPAREN, "Esperava '(' após IMPRIMIR/print"); err != nil {
		return nil, err
	}

	var argumento *No
	switch {
	case p.casar(lexer.IDENTIFIER):
		token := p.tokenAnterior()
		argumento = NovaFolha(VARIAVEL, token.Value, token)
	case p.casar(lexer.STRING):
		token := p.tokenAnterior()
		argumento = NovaFolha(TEXTO, lexer.DecodificarString(token.Value), token)
	default:
		return nil, p.erroEsperado("Esperava variável ou string em IMPRIMIR/print")
	}

	if _, err := p.consumir(lexer.RPAREN, "Esperava ')' após argumento"); err != nil {
		return nil, err
	}
	return NovoNo(IMPRESSAO, comando, argumento), nil
}

// condicao : SE expressaoRelacional ENTAO comando (SENAO comando)?
func (p *Parser) analisarCondicao() (*No, error) {
	tokenSe, err := p.consumir(lexer.SE, "Esperava 'SE'")
	if err != nil {
		return nil, err
	}

	condicao, err := p.analisarExpressaoRelacional()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumir(lexer.ENTAO, "Esperava 'ENTAO'"); err != nil {
		return nil, err
	}
	entao, err := p.analisarComando()
	if err != nil {
		return nil, err
	}

	no := NovoNo(CONDICAO, tokenSe, condicao, entao)
	if p.casar(lexer.SENAO) {
		senao, err := p.analisarComando()
		if err != nil {
			return nil, err
		}
		no.Adicionar(senao)
	}
	return no, nil
}

// repeticao : ENQUANTO expressaoRelacional comando
func (p *Parser) analisarRepeticao() (*No, error) {
	tokenEnquanto, err := p.consumir(lexer.ENQUANTO, "Esperava 'ENQUANTO'")
	if err != nil {
		return nil, err
	}
	condicao, err := p.analisarExpressaoRelacional()
	if err != nil {
		return nil, err
	}
	corpo, err := p.analisarComando()
	if err != nil {
		return nil, err
	}
	return NovoNo(REPETICAO, tokenEnquanto, condicao, corpo), nil
}

// bloco : INICIO listaComandos FIM
func (p *Parser) analisarBloco() (*No, error) {
	tokenInicio, err := p.consumir(lexer.INICIO, "Esperava 'INICIO'")
	if err != nil {
		return nil, err
	}
	comandos, err := p.analisarListaComandos()
	if err != nil {
		return nil, err
	}
	if _, err := p.consumir(lexer.FIM, "Esperava 'FIM'"); err != nil {
		return nil, err
	}
	return NovoNo(BLOCO, tokenInicio, comandos), nil
}

// expressaoRelacional : termoRelacional ((E | OU) termoRelacional)*
//
// E e OU têm a mesma precedência e associam à esquerda.
func (p *Parser) analisarExpressaoRelacional() (*No, error) {
	esquerda, err := p.analisarTermoRelacional()
	if err != nil {
		return nil, err
	}
	for p.casar(lexer.E, lexer.OU) {
		operador := p.tokenAnterior()
		direita, err := p.analisarTermoRelacional()
		if err != nil {
			return nil, err
		}
		esquerda = NovaFolha(OPERACAO_LOGICA, operador.Value, operador).Adicionar(esquerda, direita)
	}
	return esquerda, nil
}

// termoRelacional : '(' expressaoRelacional ')' | expressaoAritmetica OP_REL expressaoAritmetica
func (p *Parser) analisarTermoRelacional() (*No, error) {
	if p.casar(lexer.LPAREN) {
		if err := p.entrar(); err != nil {
			return nil, err
		}
		defer p.sair()

		interna, err := p.analisarExpressaoRelacional()
		if err != nil {
			return nil, err
		}
		if _, err := p.consumir(lexer.RPAREN, "Esperava ')' após expressão relacional"); err != nil {
			return nil, err
		}
		return interna, nil
	}

	esquerda, err := p.analisarExpressaoAritmetica()
	if err != nil {
		return nil, err
	}
	if !p.tokenAtual().EOperadorRelacional() {
		return nil, p.erroEsperado("Esperava operador relacional")
	}
	operador := p.proximoToken()
	direita, err := p.analisarExpressaoAritmetica()
	if err != nil {
		return nil, err
	}
	return NovaFolha(OPERACAO_RELACIONAL, operador.Value, operador).Adicionar(esquerda, direita), nil
}

// expressaoAritmetica : termo (('+' | '-') termo)*
func (p *Parser) analisarExpressaoAritmetica() (*No, error) {
	esquerda, err := p.analisarTermo()
	if err != nil {
		return nil, err
	}
	for p.casar(lexer.PLUS, lexer.MINUS) {
		operador := p.tokenAnterior()
		direita, err := p.analisarTermo()
		if err != nil {
			return nil, err
		}
		esquerda = NovaFolha(OPERACAO_BINARIA, operador.Value, operador).Adicionar(esquerda, direita)
	}
	return esquerda, nil
}

// termo : fator (('*' | '/') fator)*
func (p *Parser) analisarTermo() (*No, error) {
	esquerda, err := p.analisarFator()
	if err != nil {
		return nil, err
	}
	for p.casar(lexer.MULTIPLY, lexer.DIVIDE) {
		operador := p.tokenAnterior()
		direita, err := p.analisarFator()
		if err != nil {
			return nil, err
		}
		esquerda = NovaFolha(OPERACAO_BINARIA, operador.Value, operador).Adicionar(esquerda, direita)
	}
	return esquerda, nil
}

// fator : INT_LIT | FLOAT_LIT | IDENTIFIER | '(' expressaoAritmetica ')'
func (p *Parser) analisarFator() (*No, error) {
	token := p.tokenAtual()

	switch token.Type {
	case lexer.INT_LIT:
		p.proximoToken()
		return NovaFolha(CONSTANTE_INTEIRA, token.Value, token), nil

	case lexer.FLOAT_LIT:
		p.proximoToken()
		return NovaFolha(CONSTANTE_REAL, token.Value, token), nil

	case lexer.IDENTIFIER:
		p.proximoToken()
		return NovaFolha(VARIAVEL, token.Value, token), nil

	case lexer.LPAREN:
		p.proximoToken()
		if err := p.entrar(); err != nil {
			return nil, err
		}
		defer p.sair()

		expressao, err := p.analisarExpressaoAritmetica()
		if err != nil {
			return nil, err
		}
		if _, err := p.consumir(lexer.RPAREN, "Esperava ')' após expressão"); err != nil {
			return nil, err
		}
		return expressao, nil

	default:
		return nil, p.erroEsperado("Esperava número, variável ou '('")
	}
}

// entrar registra um nível de aninhamento e aplica o limite configurado
func (p *Parser) entrar() error {
	p.profundidade++
	if p.profundidadeMaxima > 0 && p.profundidade > p.profundidadeMaxima {
		token := p.tokenAtual()
		return utils.NovoErroSintatico(
			fmt.Sprintf("Aninhamento excede o limite de %d níveis", p.profundidadeMaxima),
			token.Position.Line,
			token.Position.Column,
		)
	}
	return nil
}

func (p *Parser) sair() {
	p.profundidade--
}

// consumir avança se o token atual for do tipo esperado; caso contrário falha
func (p *Parser) consumir(tipoEsperado lexer.TokenType, mensagem string) (lexer.Token, error) {
	if p.verificar(tipoEsperado) {
		return p.proximoToken(), nil
	}
	return lexer.Token{}, p.erroEsperado(mensagem)
}

// erroEsperado monta o erro sintático no token atual
func (p *Parser) erroEsperado(mensagem string) error {
	token := p.tokenAtual()
	return utils.NovoErroSintatico(
		fmt.Sprintf("%s. Encontrado %s '%s'", mensagem, token.Type, token.Value),
		token.Position.Line,
		token.Position.Column,
	)
}

// verificar informa se o token atual é de um dos tipos, sem consumir
func (p *Parser) verificar(tipos ...lexer.TokenType) bool {
	atual := p.tokenAtual().Type
	for _, tipo := range tipos {
		if atual == tipo {
			return true
		}
	}
	return false
}

// casar consome o token atual se for de um dos tipos. Nunca consome EOF.
func (p *Parser) casar(tipos ...lexer.TokenType) bool {
	if p.chegouAoFim() || !p.verificar(tipos...) {
		return false
	}
	p.proximoToken()
	return true
}

// proximoToken retorna o token atual e avança a posição, exceto em EOF
func (p *Parser) proximoToken() lexer.Token {
	token := p.tokenAtual()
	if !p.chegouAoFim() {
		p.posicaoAtual++
	}
	return token
}

// tokenAtual retorna o token atual sem avançar
func (p *Parser) tokenAtual() lexer.Token {
	if p.posicaoAtual < len(p.tokens) {
		return p.tokens[p.posicaoAtual]
	}
	// Lista sem EOF explícito: sintetiza um logo após o último token
	posicao := lexer.NovaPosicao(1, 1, 0)
	if len(p.tokens) > 0 {
		ultimo := p.tokens[len(p.tokens)-1]
		posicao = ultimo.Position
		posicao.Column += len([]rune(ultimo.Value))
		posicao.Offset += len([]rune(ultimo.Value))
	}
	return lexer.NovoToken(lexer.EOF, "", posicao)
}

// tokenAnterior retorna o último token consumido
func (p *Parser) tokenAnterior() lexer.Token {
	return p.tokens[p.posicaoAtual-1]
}

// chegouAoFim verifica se chegou ao fim dos tokens
func (p *Parser) chegouAoFim() bool {
	return p.tokenAtual().Type == lexer.EOF
}
