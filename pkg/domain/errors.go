package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration marca qualquer falha de configuração do grafo de
	// supersessão detectada durante o Build.
	ErrConfiguration = errors.New("invalid supersession configuration")

	// ErrEmptyScope é retornado quando uma notificação declara um escopo
	// vazio que não é a sentinela ALL.
	ErrEmptyScope = errors.New("notification affects no entities")
)

// ConfigurationError descreve uma declaração de supersessão inválida: um alvo
// nunca registrado ou um ciclo entre tipos. É fatal e ocorre apenas durante o
// start-up, antes de qualquer consulta ao grafo.
type ConfigurationError struct {
	Source Type   // tipo que declarou a aresta inválida
	Target Type   // alvo não registrado, quando for o caso
	Cycle  []Type // caminho do ciclo detectado, quando for o caso
}

func (e *ConfigurationError) Error() string {
	if len(e.Cycle) > 0 {
		return fmt.Sprintf("supersession cycle detected: %s", joinTypes(e.Cycle, " -> "))
	}
	return fmt.Sprintf("event type %q supersedes unregistered type %q", e.Source, e.Target)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func joinTypes(types []Type, sep string) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, sep)
}
