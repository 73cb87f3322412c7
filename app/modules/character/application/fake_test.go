package characterservice

import (
	"context"

	"github.com/edenhub/eden-web/app/shared/edenapi"
)

// ------------------------
// Fake API
// ------------------------

type FakeAPI struct {
	trace []string

	ListCharactersFunc        func(ctx context.Context) ([]edenapi.Character, error)
	CreateCharacterFunc       func(ctx context.Context, in edenapi.CharacterInput) (edenapi.Character, error)
	UpdateCharacterFunc       func(ctx context.Context, id string, in edenapi.CharacterUpdate) (edenapi.Character, error)
	UpdateCharacterStatusFunc func(ctx context.Context, id string, in edenapi.CharacterStatusUpdate) (edenapi.Character, error)
	DeleteCharacterFunc       func(ctx context.Context, id string) error
}

func (f *FakeAPI) Trace() []string {
	return f.trace
}

func (f *FakeAPI) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeAPI) ListCharacters(ctx context.Context) ([]edenapi.Character, error) {
	f.record("ListCharacters")
	if f.ListCharactersFunc != nil {
		return f.ListCharactersFunc(ctx)
	}
	return nil, nil
}

func (f *FakeAPI) CreateCharacter(ctx context.Context, in edenapi.CharacterInput) (edenapi.Character, error) {
	f.record("CreateCharacter")
	if f.CreateCharacterFunc != nil {
		return f.CreateCharacterFunc(ctx, in)
	}
	return edenapi.Character{ID: "new", Name: in.Name, Class: in.Class, ItemLevel: in.ItemLevel}, nil
}

func (f *FakeAPI) UpdateCharacter(ctx context.Context, id string, in edenapi.CharacterUpdate) (edenapi.Character, error) {
	f.record("UpdateCharacter")
	if f.UpdateCharacterFunc != nil {
		return f.UpdateCharacterFunc(ctx, id, in)
	}
	return edenapi.Character{ID: id}, nil
}

func (f *FakeAPI) UpdateCharacterStatus(ctx context.Context, id string, in edenapi.CharacterStatusUpdate) (edenapi.Character, error) {
	f.record("UpdateCharacterStatus")
	if f.UpdateCharacterStatusFunc != nil {
		return f.UpdateCharacterStatusFunc(ctx, id, in)
	}
	return edenapi.Character{ID: id}, nil
}

func (f *FakeAPI) DeleteCharacter(ctx context.Context, id string) error {
	f.record("DeleteCharacter")
	if f.DeleteCharacterFunc != nil {
		return f.DeleteCharacterFunc(ctx, id)
	}
	return nil
}
