package domain

// Resolver aplica as regras de supersessão de um grafo a um lote de eventos,
// descartando ou reduzindo eventos cobertos por outros do mesmo lote. É uma
// função pura sobre o lote: não dispara handlers nem guarda estado entre
// chamadas, e instâncias podem ser compartilhadas entre goroutines.
type Resolver struct {
	graph *SupersessionGraph
}

// NewResolver cria um resolver sobre um grafo já construído.
func NewResolver(graph *SupersessionGraph) *Resolver {
	return &Resolver{graph: graph}
}

// Resolve produz um novo lote contendo apenas os eventos que sobrevivem à
// supersessão, na ordem original. Para cada evento, a cobertura é a união dos
// escopos de todos os eventos do lote original cujo tipo o supersede direta ou
// transitivamente: cobertura ALL descarta o evento inteiro; cobertura parcial
// reduz o escopo por diferença de conjuntos, descartando-o quando esvazia.
// Eventos do mesmo tipo nunca se cobrem. A decisão usa sempre o lote de
// entrada, nunca o resultado parcial, o que torna a operação idempotente.
func (r *Resolver) Resolve(b Batch) Batch {
	events := b.Events()
	if len(events) == 0 {
		return b
	}

	byType := make(map[Type][]FiredEvent, len(events))
	for _, e := range events {
		byType[e.Type()] = append(byType[e.Type()], e)
	}

	out := make([]FiredEvent, 0, len(events))
	for _, e := range events {
		scope, dropped := r.resolveScope(e, byType)
		if dropped {
			continue
		}
		e.Scope = scope
		out = append(out, e)
	}
	return Batch{events: out}
}

// resolveScope calcula o escopo sobrevivente de um evento frente aos grupos do
// lote original. Retorna dropped=true quando a cobertura elimina o evento.
func (r *Resolver) resolveScope(e FiredEvent, byType map[Type][]FiredEvent) (Scope, bool) {
	var covered map[string]struct{}

	for superType, group := range byType {
		if !r.graph.Supersedes(superType, e.Type()) {
			continue
		}
		for _, sup := range group {
			if sup.Scope.IsAll() {
				return Scope{}, true
			}
			if covered == nil {
				covered = make(map[string]struct{}, sup.Scope.Len())
			}
			for id := range sup.Scope.ids {
				covered[id] = struct{}{}
			}
		}
	}

	if len(covered) == 0 {
		return e.Scope, false
	}

	reduced := e.Scope.without(covered)
	if reduced.IsEmpty() {
		return Scope{}, true
	}
	return reduced, false
}
