package parser

import (
	"fmt"

	"github.com/khevencolino/MiniCompilador/internal/lexer"
)

// TipoNo identifica a produção que gerou um nó da AST
type TipoNo int

const (
	PROGRAMA TipoNo = iota
	LISTA_DECLARACOES
	DECLARACAO
	ID
	TIPO
	LISTA_COMANDOS
	ATRIBUICAO
	LEITURA
	IMPRESSAO
	CONDICAO
	REPETICAO
	BLOCO
	OPERACAO_BINARIA
	OPERACAO_RELACIONAL
	OPERACAO_LOGICA
	VARIAVEL
	CONSTANTE_INTEIRA
	CONSTANTE_REAL
	TEXTO
)

var rotulosNos = [...]string{
	PROGRAMA:            "programa",
	LISTA_DECLARACOES:   "listaDeclaracoes",
	DECLARACAO:          "declaracao",
	ID:                  "id",
	TIPO:                "tipo",
	LISTA_COMANDOS:      "listaComandos",
	ATRIBUICAO:          "atribuicao",
	LEITURA:             "ler",
	IMPRESSAO:           "imprimir",
	CONDICAO:            "if",
	REPETICAO:           "enquanto",
	BLOCO:               "bloco",
	OPERACAO_BINARIA:    "binop",
	OPERACAO_RELACIONAL: "relop",
	OPERACAO_LOGICA:     "boolop",
	VARIAVEL:            "var",
	CONSTANTE_INTEIRA:   "int",
	CONSTANTE_REAL:      "float",
	TEXTO:               "string",
}

// String retorna o rótulo do nó usado nas saídas
func (t TipoNo) String() string {
	if t < 0 || int(t) >= len(rotulosNos) {
		return "?"
	}
	return rotulosNos[t]
}

// CarregaValor informa se nós deste tipo guardam um valor escalar
func (t TipoNo) CarregaValor() bool {
	switch t {
	case ID, TIPO, LEITURA, OPERACAO_BINARIA, OPERACAO_RELACIONAL, OPERACAO_LOGICA,
		VARIAVEL, CONSTANTE_INTEIRA, CONSTANTE_REAL, TEXTO:
		return true
	}
	return false
}

// No é um nó da árvore sintática. Cada nó é dono exclusivo dos seus filhos.
type No struct {
	Tipo   TipoNo      // Produção que gerou o nó
	Valor  string      // Lexema, nome ou operador, quando Tipo.CarregaValor()
	Filhos []*No       // Filhos em ordem
	Token  lexer.Token // Token que originou o nó
}

// NovoNo cria um nó interno
func NovoNo(tipo TipoNo, token lexer.Token, filhos ...*No) *No {
	return &No{Tipo: tipo, Filhos: filhos, Token: token}
}

// NovaFolha cria um nó com valor
func NovaFolha(tipo TipoNo, valor string, token lexer.Token) *No {
	return &No{Tipo: tipo, Valor: valor, Token: token}
}

// Adicionar anexa filhos ao nó e o retorna
func (n *No) Adicionar(filhos ...*No) *No {
	n.Filhos = append(n.Filhos, filhos...)
	return n
}

// Rotulo retorna "tipo" ou "tipo: valor"
func (n *No) Rotulo() string {
	if !n.Tipo.CarregaValor() {
		return n.Tipo.String()
	}
	if n.Tipo == TEXTO {
		return fmt.Sprintf("%s: %q", n.Tipo, n.Valor)
	}
	return fmt.Sprintf("%s: %s", n.Tipo, n.Valor)
}

// String retorna um resumo do nó
func (n *No) String() string {
	return fmt.Sprintf("<%s %d filhos>", n.Rotulo(), len(n.Filhos))
}

// Percorrer visita a árvore em pré-ordem. Se visitar retornar false, os
// filhos do nó não são visitados.
func Percorrer(n *No, visitar func(no *No, profundidade int) bool) {
	percorrer(n, 0, visitar)
}

func percorrer(n *No, profundidade int, visitar func(*No, int) bool) {
	if n == nil || !visitar(n, profundidade) {
		return
	}
	for _, filho := range n.Filhos {
		percorrer(filho, profundidade+1, visitar)
	}
}

// ContarNos retorna o total de nós da árvore
func ContarNos(raiz *No) int {
	total := 0
	Percorrer(raiz, func(*No, int) bool {
		total++
		return true
	})
	return total
}
