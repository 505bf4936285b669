package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/khevencolino/MiniCompilador/internal/utils"
)

var (
	ColorError   = lipgloss.Color("#EF4444") // Vermelho
	ColorSuccess = lipgloss.Color("#10B981") // Verde
	ColorMuted   = lipgloss.Color("#6B7280") // Cinza

	estiloErro    = lipgloss.NewStyle()
	estiloSucesso = lipgloss.NewStyle()
	estiloDetalhe = lipgloss.NewStyle()
)

// corAtiva decide se o terminal recebe cores conforme o modo configurado
func corAtiva(modo string, arquivo *os.File) bool {
	switch modo {
	case "sempre":
		return true
	case "nunca":
		return false
	default:
		return term.IsTerminal(int(arquivo.Fd()))
	}
}

// configurarEstilos monta os estilos; sem cor ficam sem formatação
func configurarEstilos(modo string) {
	if !corAtiva(modo, os.Stderr) {
		estiloErro = lipgloss.NewStyle()
		estiloSucesso = lipgloss.NewStyle()
		estiloDetalhe = lipgloss.NewStyle()
		return
	}
	// As mensagens vão para stderr; o perfil de cor é detectado nele
	renderizador := lipgloss.NewRenderer(os.Stderr)
	if modo == "sempre" {
		// Sem TTY o lipgloss detectaria texto puro
		renderizador.SetColorProfile(termenv.TrueColor)
	}
	estiloErro = renderizador.NewStyle().Foreground(ColorError).Bold(true)
	estiloSucesso = renderizador.NewStyle().Foreground(ColorSuccess).Bold(true)
	estiloDetalhe = renderizador.NewStyle().Foreground(ColorMuted)
}

// reportarErro escreve "TipoErro: mensagem" no destino
func reportarErro(w io.Writer, err error) {
	tipo := utils.TipoDoErro(err)
	fmt.Fprintf(w, "%s %s\n", estiloErro.Render(tipo.String()+":"), estiloDetalhe.Render(err.Error()))
}
