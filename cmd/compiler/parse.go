package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khevencolino/MiniCompilador/internal/compiler"
	"github.com/khevencolino/MiniCompilador/internal/parser"
	"github.com/khevencolino/MiniCompilador/internal/utils"
)

var (
	formatoFlag string
	saidaFlag   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <arquivo>",
	Short: "Executa a análise sintática e mostra a AST",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ast, err := compiler.NovoCompilador(cfg).AnalisarArquivo(args[0])
		if err != nil {
			return err
		}

		renderizada, err := parser.Renderizar(ast, parser.Formato(cfg.Saida.Formato))
		if err != nil {
			return err
		}
		if err := escreverSaida(cmd, renderizada); err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr(), estiloSucesso.Render("OK: sintaxe válida."))
		return nil
	},
}

func init() {
	nomes := make([]string, len(parser.Formatos))
	for i, formato := range parser.Formatos {
		nomes[i] = string(formato)
	}

	parseCmd.Flags().StringVarP(&formatoFlag, "formato", "f", "", "Formato da AST: "+strings.Join(nomes, ", "))
	parseCmd.Flags().StringVarP(&saidaFlag, "saida", "o", "", "Arquivo de saída (padrão: saída padrão)")
	lexCmd.Flags().StringVarP(&saidaFlag, "saida", "o", "", "Arquivo de saída (padrão: saída padrão)")
	rootCmd.AddCommand(parseCmd)
}

// escreverSaida grava o resultado no arquivo configurado ou na saída padrão
func escreverSaida(cmd *cobra.Command, conteudo string) error {
	if cfg.Saida.Arquivo != "" {
		return utils.EscreverArquivo(cfg.Saida.Arquivo, conteudo)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), conteudo)
	return err
}
