package domain

// Type identifica um tipo de notificação no sistema.
type Type string

// Notification representa uma notificação disparada dentro de uma unidade de
// trabalho. As implementações carregam o payload em acessores tipados
// próprios; o motor de resolução nunca inspeciona o payload.
type Notification interface {
	NotificationName() Type
	AffectedEntities() Scope
}

// FiredEvent é uma ocorrência de notificação dentro de um lote. Scope é o
// escopo efetivo da ocorrência, possivelmente reduzido pela resolução sem
// alterar a notificação original. Seq é a posição de emissão no lote e é
// preservada para os sobreviventes da resolução.
type FiredEvent struct {
	Notification Notification
	Scope        Scope
	Seq          int
}

// Type retorna o tipo da notificação disparada.
func (e FiredEvent) Type() Type {
	return e.Notification.NotificationName()
}
