package driven

import (
	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

// Rendered is the output of one backend rendering call: the generated body
// plus the declarations the merge controller places around it.
type Rendered struct {
	// Body is the generated Dart code for the schema.
	Body string

	// Imports are import lines required by the body, already formatted
	// ("import 'pet.dart';"), deduplicated and in stable order.
	Imports []string

	// Parts are part directives required by the body
	// ("part 'pet.g.dart';"), used by backends that rely on code
	// generation companions.
	Parts []string
}

// EmissionBackend renders resolved models into target-language text.
// Backends are interchangeable: the resolution pipeline produces the same
// models regardless of which backend consumes them. At least three ship with
// the CLI (manual serialization, reflection-annotation based, immutable
// builder).
type EmissionBackend interface {
	// Name is the registry key selecting this backend.
	Name() string

	// Description is a one-line summary for the backends listing.
	Description() string

	// RenderClass renders a plain resolved class.
	RenderClass(class *domain.ResolvedClass) (*Rendered, error)

	// RenderEnum renders a generated enumeration.
	RenderEnum(enum *domain.EnumModel) (*Rendered, error)

	// RenderUnion renders a discriminated union: tag field, one nullable
	// field per variant, named constructors, exhaustive dispatch and
	// tag-switching decode.
	RenderUnion(union *domain.UnionModel) (*Rendered, error)

	// RenderWrapper renders the minimal dynamic wrapper used for
	// undiscriminated alternative groups.
	RenderWrapper(wrapper *domain.WrapperModel) (*Rendered, error)
}
