package parser

import (
	"strings"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais da AST
type VisualizadorArvore struct {
	indentacao string // Recuo de cada nível no contorno
}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{indentacao: "  "}
}

// CriarArvore converte a AST para o formato do treedrawer
func (v *VisualizadorArvore) CriarArvore(raiz *No) *tree.Tree {
	arvore := tree.NewTree(tree.NodeString(raiz.Rotulo()))
	v.adicionarFilhos(arvore, raiz)
	return arvore
}

// adicionarFilhos replica os filhos do nó sob o nó correspondente do desenho
func (v *VisualizadorArvore) adicionarFilhos(destino *tree.Tree, no *No) {
	for _, filho := range no.Filhos {
		// AddChild retorna o ponteiro para o filho recém-criado
		subarvore := destino.AddChild(tree.NodeString(filho.Rotulo()))
		v.adicionarFilhos(subarvore, filho)
	}
}

// Desenhar retorna a árvore desenhada com caracteres de caixa
func (v *VisualizadorArvore) Desenhar(raiz *No) string {
	return v.CriarArvore(raiz).String()
}

// Contorno retorna uma linha por nó, com os filhos um nível mais recuados
func (v *VisualizadorArvore) Contorno(raiz *No) string {
	var builder strings.Builder
	Percorrer(raiz, func(no *No, profundidade int) bool {
		builder.WriteString(strings.Repeat(v.indentacao, profundidade))
		builder.WriteString(no.Rotulo())
		builder.WriteByte('\n')
		return true
	})
	return builder.String()
}
