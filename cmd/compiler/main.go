package main

import (
	"os"

	"github.com/khevencolino/MiniCompilador/internal/utils"
)

// Códigos de saída do processo
const (
	SaidaOK      = 0
	SaidaErro    = 1 // Erro léxico, sintático ou de uso
	SaidaArquivo = 2 // Arquivo inexistente ou ilegível
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportarErro(os.Stderr, err)
		os.Exit(codigoSaida(err))
	}
}

// codigoSaida mapeia o tipo do erro para o código de saída
func codigoSaida(err error) int {
	if utils.TipoDoErro(err) == utils.ErroArquivo {
		return SaidaArquivo
	}
	return SaidaErro
}
