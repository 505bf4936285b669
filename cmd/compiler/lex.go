package main

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/khevencolino/MiniCompilador/internal/compiler"
	"github.com/khevencolino/MiniCompilador/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <arquivo>",
	Short: "Executa somente a análise léxica",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens, err := compiler.NovoCompilador(cfg).TokenizarArquivo(args[0])
		if err != nil {
			return err
		}

		var buffer bytes.Buffer
		if err := lexer.FormatarTokens(&buffer, tokens); err != nil {
			return err
		}
		return escreverSaida(cmd, buffer.String())
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
