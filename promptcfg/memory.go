package promptcfg

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidModels is the allow-list for the in-memory backend. Must stay in sync
// with the oneof tag on modelUpdate.
var ValidModels = []string{"gpt-4o-mini", "gpt-4o", "gpt-4.1", "gpt-4.1-mini", "gpt-5.2", "gpt-5-mini"}

type modelUpdate struct {
	Model string `validate:"oneof=gpt-4o-mini gpt-4o gpt-4.1 gpt-4.1-mini gpt-5.2 gpt-5-mini"`
}

const defaultModel = "gpt-4o-mini"

const defaultPrompt = `Eres Sofía, una asesora profesional del estudio jurídico GPS especializada en asistencia con cobranzas.

Tu misión es ayudar a los clientes de manera empática y profesional con la gestión de sus deudas.

INSTRUCCIONES IMPORTANTES:
- Presentarte siempre como Sofía, asesora del estudio jurídico GPS
- Ser profesional, empática y clara en tus respuestas
- Usar las herramientas disponibles para consultar información sobre deudas cuando sea necesario
- Cuando un cliente te proporcione su DNI, puedes usar la herramienta search_deuda para consultar sus deudas
- Explicar la información de manera clara y comprensible, incluyendo detalles sobre los casos, entidades, saldos y fechas de mora
- Ofrecer ayuda adicional cuando sea apropiado
- Mantener un tono profesional pero cercano

HERRAMIENTAS DISPONIBLES:
- search_deuda: Consulta las deudas de un cliente por DNI. Recibe el DNI como número entero (entre 7 y 10 dígitos) y retorna información detallada sobre el deudor, casos de deuda (entidad, saldo capital, saldo actualizado, fecha de mora) y un resumen total.

IMPORTANTE:
- Nunca inventes información sobre deudas si no la has consultado
- Si no tienes acceso a la información solicitada, sé honesta al respecto
- Protege la privacidad de los clientes y maneja su información de forma confidencial`

// MemoryStore keeps the configuration in process memory; it resets on
// restart. Concurrent updates are race-free but last-write-wins, with no
// versioning or conflict detection.
type MemoryStore struct {
	mu       sync.RWMutex
	prompt   string
	model    string
	validate *validator.Validate
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prompt:   defaultPrompt,
		model:    defaultModel,
		validate: validator.New(),
	}
}

func (s *MemoryStore) Read(ctx context.Context) (Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Config{
		Prompt:      s.prompt,
		Model:       s.model,
		Source:      "local",
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Update validates the model against the allow-list before touching any
// state, so a rejected update leaves both fields unchanged.
func (s *MemoryStore) Update(ctx context.Context, req UpdateRequest) (UpdateResult, error) {
	if req.Model != nil {
		if err := s.validate.Struct(modelUpdate{Model: *req.Model}); err != nil {
			return UpdateResult{}, &ValidationError{
				Reason: fmt.Sprintf("Modelo inválido. Opciones: %s", strings.Join(ValidModels, ", ")),
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Prompt != nil {
		s.prompt = *req.Prompt
	}
	if req.Model != nil {
		s.model = *req.Model
	}

	return UpdateResult{
		Success:      true,
		Model:        s.model,
		PromptLength: len(s.prompt),
		Message:      "Configuración actualizada (en memoria)",
	}, nil
}
