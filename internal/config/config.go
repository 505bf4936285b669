package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/khevencolino/MiniCompilador/internal/parser"
)

// ArquivoPadrao é procurado no diretório atual quando nenhum caminho é dado
const ArquivoPadrao = "minicompilador.toml"

// Config reúne as opções do compilador
type Config struct {
	Geral   GeralConfig   `toml:"geral"`
	Lexico  LexicoConfig  `toml:"lexico"`
	Analise AnaliseConfig `toml:"analise"`
	Saida   SaidaConfig   `toml:"saida"`
}

// GeralConfig controla depuração e cores do terminal
type GeralConfig struct {
	Debug bool   `toml:"debug"`
	Cor   string `toml:"cor"` // auto, sempre ou nunca
}

// LexicoConfig controla a tabela de palavras-chave
type LexicoConfig struct {
	Aliases bool `toml:"aliases"` // Aceita print, if e else
}

// AnaliseConfig controla o analisador sintático
type AnaliseConfig struct {
	ProfundidadeMaxima int `toml:"profundidade_maxima"` // 0 desliga o limite
}

// SaidaConfig controla a renderização da AST
type SaidaConfig struct {
	Formato string `toml:"formato"`
	Arquivo string `toml:"arquivo"` // Vazio escreve na saída padrão
}

// Padrao retorna a configuração usada quando não há arquivo
func Padrao() *Config {
	return &Config{
		Geral: GeralConfig{
			Cor: "auto",
		},
		Lexico: LexicoConfig{
			Aliases: true,
		},
		Analise: AnaliseConfig{
			ProfundidadeMaxima: 256,
		},
		Saida: SaidaConfig{
			Formato: string(parser.FormatoContorno),
		},
	}
}

// Carregar lê a configuração de caminho. Com caminho vazio procura
// ArquivoPadrao e, se não existir, usa Padrao().
func Carregar(caminho string) (*Config, error) {
	cfg := Padrao()

	explicito := caminho != ""
	if !explicito {
		caminho = ArquivoPadrao
	}

	if _, err := os.Stat(caminho); err != nil {
		if !explicito && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("erro ao acessar configuração %s: %w", caminho, err)
	}

	if _, err := toml.DecodeFile(caminho, cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler configuração %s: %w", caminho, err)
	}

	if err := cfg.Validar(); err != nil {
		return nil, fmt.Errorf("configuração inválida em %s: %w", caminho, err)
	}
	return cfg, nil
}

// Validar confere os valores enumerados e os limites
func (c *Config) Validar() error {
	var problemas []string

	switch c.Geral.Cor {
	case "auto", "sempre", "nunca":
	default:
		problemas = append(problemas, fmt.Sprintf("geral.cor deve ser auto, sempre ou nunca, recebido %q", c.Geral.Cor))
	}

	if c.Analise.ProfundidadeMaxima < 0 {
		problemas = append(problemas, "analise.profundidade_maxima não pode ser negativa")
	}

	if !parser.FormatoValido(c.Saida.Formato) {
		problemas = append(problemas, fmt.Sprintf("saida.formato desconhecido: %q", c.Saida.Formato))
	}

	if len(problemas) > 0 {
		return errors.New(strings.Join(problemas, "; "))
	}
	return nil
}
