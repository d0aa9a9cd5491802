package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

// Ключи схем. Формат: "<Name>Event/<major>.0.0" для событий и "SeedFixtures/<major>.0.0" для фикстур.
const (
	ListingChangedEventV1 = "ListingChangedEvent/1.0.0"
	MessageCreatedEventV1 = "MessageCreatedEvent/1.0.0"
	SeedFixturesV1        = "SeedFixtures/1.0.0"
)

var (
	loadOnce        sync.Once
	compiledSchemas map[string]*jsonschema.Schema
	loadErr         error
)

// load компилирует все встроенные схемы один раз.
// Сначала все файлы добавляются как ресурсы, чтобы работали $ref между ними.
func load() (map[string]*jsonschema.Schema, error) {
	loadOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true

		var paths []string
		err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := schemasFS.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			loadErr = fmt.Errorf("error walking schema resources: %w", err)
			return
		}

		compiled := make(map[string]*jsonschema.Schema, len(paths))
		for _, path := range paths {
			schema, err := compiler.Compile(path)
			if err != nil {
				loadErr = fmt.Errorf("failed to compile schema %s: %w", path, err)
				return
			}
			compiled[generateKeyFromPath(path)] = schema
		}
		compiledSchemas = compiled
	})
	return compiledSchemas, loadErr
}

// generateKeyFromPath преобразует путь вида "schemas/events/listing-changed/v1.json"
// в ключ вида "ListingChangedEvent/1.0.0", а "schemas/fixtures/v1.json" - в "SeedFixtures/1.0.0".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
	parts := strings.Split(trimmed, "/")

	var name, version string
	switch {
	case len(parts) == 3 && parts[0] == "events":
		caser := cases.Title(language.English)
		var b strings.Builder
		for _, p := range strings.Split(parts[1], "-") {
			b.WriteString(caser.String(p))
		}
		b.WriteString("Event")
		name, version = b.String(), parts[2]
	case len(parts) == 2 && parts[0] == "fixtures":
		name, version = "SeedFixtures", parts[1]
	default:
		return ""
	}

	return fmt.Sprintf("%s/%s.0.0", name, strings.TrimPrefix(version, "v"))
}

// Validate проверяет JSON-документ по схеме с указанным ключом.
func Validate(key string, body []byte) error {
	schemas, err := load()
	if err != nil {
		return err
	}
	schema, ok := schemas[key]
	if !ok {
		return fmt.Errorf("schema '%s' not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("document is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// ValidateEvent проверяет тело события по схеме его типа и версии.
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	return Validate(fmt.Sprintf("%s/%s", eventType, eventVersion), body)
}

// ValidateFixtures проверяет файл фикстур для сидера.
func ValidateFixtures(body []byte) error {
	return Validate(SeedFixturesV1, body)
}
