package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// LerArquivo lê um arquivo-fonte e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", NovoErroArquivo("erro ao ler arquivo "+nomeArquivo, err)
	}
	if i := PrimeiroByteInvalido(bytesConteudo); i >= 0 {
		causa := fmt.Errorf("%w: byte 0x%02x na posição %d", ErrCodificacao, bytesConteudo[i], i)
		return "", NovoErroArquivo("erro ao ler arquivo "+nomeArquivo, causa)
	}
	return string(bytesConteudo), nil
}

// PrimeiroByteInvalido retorna o índice do primeiro byte que não forma
// um caractere UTF-8 válido, ou -1 se o conteúdo inteiro for válido
func PrimeiroByteInvalido(conteudo []byte) int {
	for i := 0; i < len(conteudo); {
		r, tamanho := utf8.DecodeRune(conteudo[i:])
		if r == utf8.RuneError && tamanho <= 1 {
			return i
		}
		i += tamanho
	}
	return -1
}

// EscreverArquivo grava a saída renderizada, criando o diretório se preciso
func EscreverArquivo(nomeArquivo string, conteudo string) error {
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return NovoErroArquivo("erro ao criar diretório "+diretorio, err)
	}

	if err := os.WriteFile(nomeArquivo, []byte(conteudo), 0644); err != nil {
		return NovoErroArquivo("erro ao escrever arquivo "+nomeArquivo, err)
	}

	return nil
}
