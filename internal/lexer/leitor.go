package lexer

// FimEntrada é devolvido pelo leitor quando não há mais caracteres
const FimEntrada rune = -1

// Leitor percorre o texto caractere a caractere mantendo linha e coluna.
// Não conhece tokens; quebras de linha só avançam a linha através de
// ConsumirQuebraLinha.
type Leitor struct {
	fonte  []rune // Código fonte decodificado
	indice int    // Índice do caractere atual
	linha  int    // Linha atual
	coluna int    // Coluna atual
}

// NovoLeitor cria um leitor posicionado no primeiro caractere
func NovoLeitor(entrada string) *Leitor {
	return &Leitor{
		fonte:  []rune(entrada),
		linha:  1,
		coluna: 1,
	}
}

// NoFim verifica se todo o texto já foi consumido
func (r *Leitor) NoFim() bool {
	return r.indice >= len(r.fonte)
}

// Espiar retorna o caractere atual sem consumi-lo
func (r *Leitor) Espiar() rune {
	if r.NoFim() {
		return FimEntrada
	}
	return r.fonte[r.indice]
}

// EspiarProximo retorna o caractere seguinte ao atual
func (r *Leitor) EspiarProximo() rune {
	if r.indice+1 >= len(r.fonte) {
		return FimEntrada
	}
	return r.fonte[r.indice+1]
}

// Avancar consome o caractere atual e o retorna
func (r *Leitor) Avancar() rune {
	if r.NoFim() {
		return FimEntrada
	}
	c := r.fonte[r.indice]
	r.indice++
	r.coluna++
	return c
}

// ConsumirQuebraLinha consome \r\n, \n ou \r como uma única quebra de linha
func (r *Leitor) ConsumirQuebraLinha() bool {
	switch r.Espiar() {
	case '\r':
		if r.EspiarProximo() == '\n' {
			r.indice += 2
		} else {
			r.indice++
		}
	case '\n':
		r.indice++
	default:
		return false
	}
	r.linha++
	r.coluna = 1
	return true
}

// Casar consome o caractere atual apenas se for o esperado
func (r *Leitor) Casar(esperado rune) bool {
	if r.NoFim() || r.fonte[r.indice] != esperado {
		return false
	}
	r.indice++
	r.coluna++
	return true
}

// Posicao retorna a posição do caractere atual
func (r *Leitor) Posicao() Position {
	return NovaPosicao(r.linha, r.coluna, r.indice)
}

// Trecho retorna o texto entre o offset dado e o caractere atual
func (r *Leitor) Trecho(inicio int) string {
	return string(r.fonte[inicio:r.indice])
}

func eQuebraLinha(c rune) bool {
	return c == '\n' || c == '\r'
}

func eLetra(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func eDigito(c rune) bool {
	return '0' <= c && c <= '9'
}
