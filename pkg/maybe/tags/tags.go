package tags

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/thonymg/maybe-zod/pkg/maybe"
	"github.com/thonymg/maybe-zod/pkg/maybe/pending"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// Engine wraps go-playground/validator v10 with English translations.
// One engine can back any number of Bind-ed schemas.
type Engine struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New constructs an Engine with default English translations registered.
func New() (*Engine, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	return &Engine{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Schema validates inputs of struct type T against its validate tags.
type Schema[T any] struct {
	e *Engine
}

// Bind ties the engine to a struct type, yielding a schema usable with the
// solo and later builders.
func Bind[T any](e *Engine) Schema[T] {
	return Schema[T]{e: e}
}

func (s Schema[T]) SafeValidate(ctx context.Context, input any) maybe.Verdict[T] {
	v, ok := input.(T)
	if !ok {
		var zero T
		return maybe.Reject[T](maybe.Issues{{
			Code:    "invalid_type",
			Message: fmt.Sprintf("expected %T, got %T", zero, input),
		}})
	}

	err := s.e.validate.StructCtx(ctx, v)
	if err == nil {
		return maybe.Pass(v)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// e.g. *validator.InvalidValidationError for non-struct T
		return maybe.Reject[T](maybe.IssuesFromError(err))
	}

	iss := make(maybe.Issues, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		iss = append(iss, maybe.Issue{
			Path:    "/" + strings.ToLower(fe.Field()),
			Code:    fe.Tag(),
			Message: fe.Translate(s.e.translator),
		})
	}
	return maybe.Reject[T](iss)
}

func (s Schema[T]) SafeValidateAsync(ctx context.Context, input any) *pending.Pending[maybe.Verdict[T]] {
	return pending.Go(func() (maybe.Verdict[T], error) {
		return s.SafeValidate(ctx, input), nil
	})
}
