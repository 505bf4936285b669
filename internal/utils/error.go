package utils

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCodificacao indica um texto que não está em UTF-8 válido
var ErrCodificacao = errors.New("conteúdo não está em UTF-8 válido")

// TipoErro distingue a fase que produziu o erro
type TipoErro int

const (
	ErroGenerico  TipoErro = iota // Erro sem fase definida
	ErroLexico                    // Sequência de caracteres malformada
	ErroSintatico                 // Tokens fora da gramática
	ErroArquivo                   // Falha de leitura ou escrita de arquivo
)

// String retorna o nome do tipo de erro
func (t TipoErro) String() string {
	switch t {
	case ErroLexico:
		return "ErroLexico"
	case ErroSintatico:
		return "ErroSintatico"
	case ErroArquivo:
		return "ErroArquivo"
	default:
		return "Erro"
	}
}

// CompilerError representa um erro do compilador com informações de posição
type CompilerError struct {
	Tipo     TipoErro // Fase que produziu o erro
	Mensagem string   // Mensagem de erro
	Linha    int      // Linha onde ocorreu o erro
	Coluna   int      // Coluna onde ocorreu o erro
	Detalhes string   // Detalhes adicionais do erro
	Causa    error    // Erro de origem, quando houver
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Mensagem)
	if e.Linha > 0 && e.Coluna > 0 {
		fmt.Fprintf(&builder, " em linha %d, coluna %d", e.Linha, e.Coluna)
	}
	if e.Detalhes != "" {
		builder.WriteString(" (")
		builder.WriteString(e.Detalhes)
		builder.WriteString(")")
	}
	return builder.String()
}

// Unwrap expõe o erro de origem para errors.Is e errors.As
func (e *CompilerError) Unwrap() error {
	return e.Causa
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem string, linha, coluna int, detalhes string) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Detalhes: detalhes,
	}
}

// NovoErroLexico cria um erro da análise léxica
func NovoErroLexico(mensagem string, linha, coluna int) *CompilerError {
	erro := NovoErro(mensagem, linha, coluna, "")
	erro.Tipo = ErroLexico
	return erro
}

// NovoErroSintatico cria um erro da análise sintática
func NovoErroSintatico(mensagem string, linha, coluna int) *CompilerError {
	erro := NovoErro(mensagem, linha, coluna, "")
	erro.Tipo = ErroSintatico
	return erro
}

// NovoErroArquivo cria um erro de entrada e saída
func NovoErroArquivo(mensagem string, causa error) *CompilerError {
	erro := NovoErro(mensagem, 0, 0, causa.Error())
	erro.Tipo = ErroArquivo
	erro.Causa = causa
	return erro
}

// TipoDoErro devolve o tipo do primeiro CompilerError na cadeia de err
func TipoDoErro(err error) TipoErro {
	var erroCompilador *CompilerError
	if errors.As(err, &erroCompilador) {
		return erroCompilador.Tipo
	}
	return ErroGenerico
}

// EErroLexico verifica se err vem da análise léxica
func EErroLexico(err error) bool {
	return TipoDoErro(err) == ErroLexico
}

// EErroSintatico verifica se err vem da análise sintática
func EErroSintatico(err error) bool {
	return TipoDoErro(err) == ErroSintatico
}
