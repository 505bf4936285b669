package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Formato identifica uma forma de renderizar a AST
type Formato string

const (
	FormatoContorno Formato = "contorno" // Uma linha por nó, recuada
	FormatoArvore   Formato = "arvore"   // Desenho com treedrawer
	FormatoYAML     Formato = "yaml"
	FormatoJSON     Formato = "json"
)

// Formatos lista os formatos aceitos, na ordem exibida na ajuda
var Formatos = []Formato{FormatoContorno, FormatoArvore, FormatoYAML, FormatoJSON}

// FormatoValido verifica se o nome corresponde a um formato conhecido
func FormatoValido(nome string) bool {
	for _, formato := range Formatos {
		if string(formato) == nome {
			return true
		}
	}
	return false
}

// noExportado é a forma serializável de um No
type noExportado struct {
	Tipo   string         `yaml:"tipo" json:"tipo"`
	Valor  *string        `yaml:"valor,omitempty" json:"valor,omitempty"`
	Linha  int            `yaml:"linha" json:"linha"`
	Coluna int            `yaml:"coluna" json:"coluna"`
	Filhos []*noExportado `yaml:"filhos,omitempty" json:"filhos,omitempty"`
}

func exportarNo(no *No) *noExportado {
	exportado := &noExportado{
		Tipo:   no.Tipo.String(),
		Linha:  no.Token.Position.Line,
		Coluna: no.Token.Position.Column,
	}
	if no.Tipo.CarregaValor() {
		valor := no.Valor
		exportado.Valor = &valor
	}
	for _, filho := range no.Filhos {
		exportado.Filhos = append(exportado.Filhos, exportarNo(filho))
	}
	return exportado
}

// ExportarYAML serializa a AST em YAML
func ExportarYAML(raiz *No) (string, error) {
	var buffer bytes.Buffer
	codificador := yaml.NewEncoder(&buffer)
	codificador.SetIndent(2)
	if err := codificador.Encode(exportarNo(raiz)); err != nil {
		return "", fmt.Errorf("erro ao gerar YAML: %w", err)
	}
	if err := codificador.Close(); err != nil {
		return "", fmt.Errorf("erro ao gerar YAML: %w", err)
	}
	return buffer.String(), nil
}

// ExportarJSON serializa a AST em JSON indentado
func ExportarJSON(raiz *No) (string, error) {
	dados, err := json.MarshalIndent(exportarNo(raiz), "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao gerar JSON: %w", err)
	}
	return string(dados) + "\n", nil
}

// Renderizar produz a AST no formato pedido
func Renderizar(raiz *No, formato Formato) (string, error) {
	visualizador := NovoVisualizador()
	switch formato {
	case FormatoContorno:
		return visualizador.Contorno(raiz), nil
	case FormatoArvore:
		return visualizador.Desenhar(raiz) + "\n", nil
	case FormatoYAML:
		return ExportarYAML(raiz)
	case FormatoJSON:
		return ExportarJSON(raiz)
	default:
		return "", fmt.Errorf("formato de saída desconhecido: %q", formato)
	}
}
