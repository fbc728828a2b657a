package domain

import "sort"

// GraphBuilder acumula as declarações de supersessão feitas pelos módulos de
// funcionalidade durante o start-up. Todas as chamadas a RegisterEventType
// devem acontecer antes do Build; o builder não é seguro para uso concorrente.
type GraphBuilder struct {
	known map[Type]struct{}
	edges map[Type]map[Type]struct{}
	order []Type
}

// NewGraphBuilder cria um builder vazio.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		known: make(map[Type]struct{}),
		edges: make(map[Type]map[Type]struct{}),
	}
}

// RegisterEventType declara um tipo de notificação e, opcionalmente, os tipos
// que ele supersede. Chamadas repetidas para o mesmo tipo acumulam arestas em
// um único conjunto de adjacência; pares (origem, alvo) duplicados são
// idempotentes.
func (gb *GraphBuilder) RegisterEventType(t Type, supersedes ...Type) {
	if _, ok := gb.known[t]; !ok {
		gb.known[t] = struct{}{}
		gb.order = append(gb.order, t)
	}
	if len(supersedes) == 0 {
		return
	}
	set, ok := gb.edges[t]
	if !ok {
		set = make(map[Type]struct{}, len(supersedes))
		gb.edges[t] = set
	}
	for _, target := range supersedes {
		set[target] = struct{}{}
	}
}

// Build valida as declarações acumuladas e produz o grafo imutável. Falha com
// *ConfigurationError quando uma aresta referencia um tipo nunca registrado ou
// quando a travessia em profundidade detecta um ciclo.
func (gb *GraphBuilder) Build() (*SupersessionGraph, error) {
	for _, source := range gb.order {
		for _, target := range sortedTargets(gb.edges[source]) {
			if _, ok := gb.known[target]; !ok {
				return nil, &ConfigurationError{Source: source, Target: target}
			}
		}
	}

	if cycle := gb.findCycle(); len(cycle) > 0 {
		return nil, &ConfigurationError{Source: cycle[0], Cycle: cycle}
	}

	reach := make(map[Type]map[Type]struct{}, len(gb.known))
	for _, t := range gb.order {
		gb.collectReachable(t, reach)
	}

	types := make([]Type, len(gb.order))
	copy(types, gb.order)

	return &SupersessionGraph{reach: reach, types: types}, nil
}

// findCycle percorre o grafo em profundidade e retorna o caminho do primeiro
// ciclo encontrado, fechado no tipo repetido; nil quando o grafo é acíclico.
func (gb *GraphBuilder) findCycle() []Type {
	const (
		unvisited = iota
		visiting
		visited
	)

	state := make(map[Type]int, len(gb.known))
	var path []Type
	var cycle []Type

	var visit func(t Type) bool
	visit = func(t Type) bool {
		state[t] = visiting
		path = append(path, t)

		for _, target := range sortedTargets(gb.edges[t]) {
			switch state[target] {
			case visiting:
				start := 0
				for i, p := range path {
					if p == target {
						start = i
						break
					}
				}
				cycle = append(append([]Type{}, path[start:]...), target)
				return true
			case unvisited:
				if visit(target) {
					return true
				}
			}
		}

		path = path[:len(path)-1]
		state[t] = visited
		return false
	}

	for _, t := range gb.order {
		if state[t] == unvisited && visit(t) {
			return cycle
		}
	}
	return nil
}

// collectReachable memoiza o fecho transitivo de um tipo. Só é chamada depois
// da verificação de aciclicidade, então a recursão sempre termina.
func (gb *GraphBuilder) collectReachable(t Type, reach map[Type]map[Type]struct{}) map[Type]struct{} {
	if r, ok := reach[t]; ok {
		return r
	}
	r := make(map[Type]struct{}, len(gb.edges[t]))
	reach[t] = r
	for target := range gb.edges[t] {
		r[target] = struct{}{}
		for indirect := range gb.collectReachable(target, reach) {
			r[indirect] = struct{}{}
		}
	}
	return r
}

func sortedTargets(set map[Type]struct{}) []Type {
	if len(set) == 0 {
		return nil
	}
	out := make([]Type, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SupersessionGraph responde se um tipo supersede outro, direta ou
// transitivamente. É construído uma única vez no start-up, com o fecho
// transitivo completo pré-computado, e por isso é imutável e seguro para
// leituras concorrentes sem sincronização.
type SupersessionGraph struct {
	reach map[Type]map[Type]struct{}
	types []Type
}

// Supersedes indica se uma ocorrência de `a` torna ocorrências de `b`
// redundantes para entidades sobrepostas. Um tipo nunca supersede a si mesmo.
func (g *SupersessionGraph) Supersedes(a, b Type) bool {
	if a == b {
		return false
	}
	targets, ok := g.reach[a]
	if !ok {
		return false
	}
	_, ok = targets[b]
	return ok
}

// Registered indica se o tipo foi declarado durante o start-up.
func (g *SupersessionGraph) Registered(t Type) bool {
	_, ok := g.reach[t]
	return ok
}

// Types retorna os tipos conhecidos na ordem de registro.
func (g *SupersessionGraph) Types() []Type {
	out := make([]Type, len(g.types))
	copy(out, g.types)
	return out
}
