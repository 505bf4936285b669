package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khevencolino/MiniCompilador/internal/config"
	"github.com/khevencolino/MiniCompilador/internal/debug"
)

var (
	cfgFile   string
	debugFlag bool
	corFlag   string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "minicompilador",
	Short: "MiniCompilador - Análise léxica e sintática",
	Long: `MiniCompilador analisa programas em pseudocódigo PT-BR.

Modos:
  lex    - lista os tokens no formato TIPO 'lexema' @ linha:coluna
  parse  - valida a sintaxe e mostra a árvore sintática`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: carregarConfiguracao,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Arquivo de configuração (padrão: ./"+config.ArquivoPadrao+")")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Ativar mensagens de debug")
	rootCmd.PersistentFlags().StringVar(&corFlag, "cor", "", "Cores no terminal: auto, sempre ou nunca")
}

// carregarConfiguracao lê o arquivo e aplica por cima as flags informadas
func carregarConfiguracao(cmd *cobra.Command, args []string) error {
	carregada, err := config.Carregar(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		carregada.Geral.Debug = debugFlag
	}
	if flags.Changed("cor") {
		carregada.Geral.Cor = corFlag
	}
	if flags.Lookup("formato") != nil && flags.Changed("formato") {
		carregada.Saida.Formato = formatoFlag
	}
	if flags.Lookup("saida") != nil && flags.Changed("saida") {
		carregada.Saida.Arquivo = saidaFlag
	}

	if err := carregada.Validar(); err != nil {
		return fmt.Errorf("opções inválidas: %w", err)
	}

	cfg = carregada
	debug.Enabled = cfg.Geral.Debug
	configurarEstilos(cfg.Geral.Cor)
	debug.Printf("configuração: %+v\n", *cfg)
	return nil
}
