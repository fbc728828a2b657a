package domain

import "sort"

// Scope representa o conjunto de entidades afetadas por uma notificação:
// um conjunto finito de identificadores ou a sentinela ALL. O valor zero é um
// escopo vazio e é rejeitado na fronteira do Fire.
type Scope struct {
	all bool
	ids map[string]struct{}
}

// AllEntities cria um escopo que cobre todas as entidades do agregado.
func AllEntities() Scope {
	return Scope{all: true}
}

// Entities cria um escopo limitado aos identificadores informados.
// Identificadores vazios são descartados e duplicados são unificados.
func Entities(ids ...string) Scope {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return Scope{ids: set}
}

// IsAll indica se o escopo cobre todas as entidades.
func (s Scope) IsAll() bool {
	return s.all
}

// IsEmpty indica se o escopo não cobre entidade alguma.
func (s Scope) IsEmpty() bool {
	return !s.all && len(s.ids) == 0
}

// Contains indica se a entidade está coberta pelo escopo.
func (s Scope) Contains(id string) bool {
	if s.all {
		return true
	}
	_, ok := s.ids[id]
	return ok
}

// Len retorna a quantidade de identificadores explícitos; zero quando ALL.
func (s Scope) Len() int {
	return len(s.ids)
}

// IDs retorna os identificadores em ordem lexicográfica; nil quando ALL.
func (s Scope) IDs() []string {
	if s.all || len(s.ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// without retorna uma cópia do escopo sem os identificadores cobertos.
// Um escopo ALL nunca é estreitado por cobertura parcial.
func (s Scope) without(covered map[string]struct{}) Scope {
	if s.all || len(covered) == 0 {
		return s
	}
	remaining := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		if _, ok := covered[id]; !ok {
			remaining[id] = struct{}{}
		}
	}
	return Scope{ids: remaining}
}
