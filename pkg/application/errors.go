package application

import (
	"fmt"
	"strings"

	"github.com/mateusmacedo/go-eventing/pkg/domain"
)

// HandlerFailure registra a falha de um único assinante durante o despacho,
// atribuída ao evento e ao assinante que a originaram.
type HandlerFailure struct {
	Event   domain.Type
	Seq     int
	Handler string
	Err     error
}

func (f HandlerFailure) Error() string {
	return fmt.Sprintf("handler %s: event %s (seq %d): %v", f.Handler, f.Event, f.Seq, f.Err)
}

func (f HandlerFailure) Unwrap() error {
	return f.Err
}

// DispatchError agrega as falhas de assinantes de um despacho. Falhas são
// isoladas: os demais assinantes do lote executam normalmente e o agregado é
// reportado uma única vez ao dono da unidade de trabalho.
type DispatchError struct {
	Failures []HandlerFailure
}

func (e *DispatchError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("dispatch finished with %d handler failure(s): %s", len(e.Failures), strings.Join(msgs, "; "))
}

// Unwrap expõe as falhas individuais para errors.Is e errors.As.
func (e *DispatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
