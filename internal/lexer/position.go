package lexer

import "fmt"

// Position marca onde um lexema começa no código fonte
type Position struct {
	Line   int // Linha, a partir de 1
	Column int // Coluna em caracteres, a partir de 1
	Offset int // Índice do caractere no texto
}

// String retorna a posição no formato usado nas mensagens de erro
func (p Position) String() string {
	return fmt.Sprintf("linha %d, coluna %d", p.Line, p.Column)
}

// Coordenadas retorna a posição no formato linha:coluna
func (p Position) Coordenadas() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NovaPosicao cria uma nova posição
func NovaPosicao(linha, coluna, offset int) Position {
	return Position{
		Line:   linha,
		Column: coluna,
		Offset: offset,
	}
}
