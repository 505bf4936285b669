package compiler

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/khevencolino/MiniCompilador/internal/config"
	"github.com/khevencolino/MiniCompilador/internal/debug"
	"github.com/khevencolino/MiniCompilador/internal/lexer"
	"github.com/khevencolino/MiniCompilador/internal/parser"
	"github.com/khevencolino/MiniCompilador/internal/utils"
)

// Compiler encadeia as fases léxica e sintática. Cada chamada cria um
// Lexer e um Parser novos, então um Compiler pode ser reutilizado.
type Compiler struct {
	opcoesLexico []lexer.Opcao  // Opções repassadas a cada Lexer
	opcoesParser []parser.Opcao // Opções repassadas a cada Parser
}

// NovoCompilador cria um compilador configurado por cfg; nil usa config.Padrao()
func NovoCompilador(cfg *config.Config) *Compiler {
	if cfg == nil {
		cfg = config.Padrao()
	}
	return &Compiler{
		opcoesLexico: []lexer.Opcao{lexer.ComAliases(cfg.Lexico.Aliases)},
		opcoesParser: []parser.Opcao{parser.ComProfundidadeMaxima(cfg.Analise.ProfundidadeMaxima)},
	}
}

// Impressao retorna a impressão digital xxhash do código fonte
func Impressao(fonte string) uint64 {
	return xxhash.Sum64String(fonte)
}

// Tokenizar realiza a análise léxica de um código fonte
func (c *Compiler) Tokenizar(fonte string) ([]lexer.Token, error) {
	debug.Printf("análise léxica: %d bytes, fonte %016x\n", len(fonte), Impressao(fonte))

	tokens, err := lexer.NovoLexer(fonte, c.opcoesLexico...).Tokenizar()
	if err != nil {
		return nil, fmt.Errorf("análise léxica: %w", err)
	}

	debug.Printf("análise léxica: %d tokens\n", len(tokens))
	return tokens, nil
}

// AnalisarSintaxe tokeniza o código fonte e constrói a AST
func (c *Compiler) AnalisarSintaxe(fonte string) (*parser.No, error) {
	tokens, err := c.Tokenizar(fonte)
	if err != nil {
		return nil, err
	}

	ast, err := parser.NovoParser(tokens, c.opcoesParser...).AnalisarPrograma()
	if err != nil {
		return nil, fmt.Errorf("análise sintática: %w", err)
	}

	debug.Printf("análise sintática: %d nós\n", parser.ContarNos(ast))
	return ast, nil
}

// TokenizarArquivo lê um arquivo e retorna seus tokens
func (c *Compiler) TokenizarArquivo(arquivoEntrada string) ([]lexer.Token, error) {
	conteudo, err := utils.LerArquivo(arquivoEntrada)
	if err != nil {
		return nil, err
	}
	debug.Printf("arquivo %s lido\n", arquivoEntrada)
	return c.Tokenizar(conteudo)
}

// AnalisarArquivo lê um arquivo e retorna sua AST
func (c *Compiler) AnalisarArquivo(arquivoEntrada string) (*parser.No, error) {
	conteudo, err := utils.LerArquivo(arquivoEntrada)
	if err != nil {
		return nil, err
	}
	debug.Printf("arquivo %s lido\n", arquivoEntrada)
	return c.AnalisarSintaxe(conteudo)
}
