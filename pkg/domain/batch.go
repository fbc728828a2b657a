package domain

// Batch é a sequência ordenada de eventos disparados durante uma unidade de
// trabalho. Um lote pertence a exatamente uma unidade de trabalho e nunca é
// compartilhado entre operações concorrentes; depois da resolução ele não é
// mais alterado.
type Batch struct {
	events []FiredEvent
}

// Append registra uma notificação no final do lote, capturando o escopo
// declarado e a posição de emissão.
func (b *Batch) Append(n Notification) {
	b.events = append(b.events, FiredEvent{
		Notification: n,
		Scope:        n.AffectedEntities(),
		Seq:          len(b.events),
	})
}

// Len retorna a quantidade de eventos no lote.
func (b Batch) Len() int {
	return len(b.events)
}

// IsEmpty indica se o lote não contém eventos.
func (b Batch) IsEmpty() bool {
	return len(b.events) == 0
}

// Events retorna os eventos na ordem de emissão. O slice é compartilhado com
// o lote e não deve ser modificado pelo chamador.
func (b Batch) Events() []FiredEvent {
	return b.events
}
