package debug

import (
	"fmt"
	"io"
	"os"
)

// Enabled liga as mensagens de depuração; o CLI define uma vez na partida
var Enabled bool = false

// Saida recebe as mensagens de depuração
var Saida io.Writer = os.Stderr

const prefixo = "[debug] "

func Printf(format string, args ...interface{}) {
	if Enabled {
		fmt.Fprintf(Saida, prefixo+format, args...)
	}
}
