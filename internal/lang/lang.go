package lang

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// Language is the canonical tag of a supported programming language.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	Go         Language = "go"
	Rust       Language = "rust"
	Java       Language = "java"
	C          Language = "c"
	CPP        Language = "cpp"
	CSharp     Language = "c-sharp"
	PHP        Language = "php"
	Ruby       Language = "ruby"
	Scala      Language = "scala"
	Kotlin     Language = "kotlin"
	Lua        Language = "lua"
	Bash       Language = "bash"
	CSS        Language = "css"
	HTML       Language = "html"
	YAML       Language = "yaml"
	TOML       Language = "toml"
	HCL        Language = "hcl"
	OCaml      Language = "ocaml"
	Zig        Language = "zig"
	ObjectiveC Language = "objc"
	Dart       Language = "dart"
	SQL        Language = "sql"
	Swift      Language = "swift"
	Dockerfile Language = "dockerfile"
	Groovy     Language = "groovy"
	R          Language = "r"
	SCSS       Language = "scss"
	Elixir     Language = "elixir"
	Erlang     Language = "erlang"
	Haskell    Language = "haskell"
	Perl       Language = "perl"
)

// LanguageSpec binds a language tag to its grammar and the names it is known by.
type LanguageSpec struct {
	Language       Language
	Aliases        []string // alternative tags accepted by Lookup, lowercase
	FileExtensions []string // with leading dot, lowercase

	// Grammar returns the tree-sitter TSLanguage pointer exported by the
	// grammar's Go binding.
	Grammar func() unsafe.Pointer
}

var (
	registryMu sync.RWMutex
	byLanguage = map[Language]*LanguageSpec{}
	byTag      = map[string]*LanguageSpec{} // canonical tags and aliases
	byExt      = map[string]*LanguageSpec{}
)

// Register adds spec to the registry, replacing any earlier spec for the same
// language, alias or extension. Safe to call at any time.
func Register(spec *LanguageSpec) {
	registryMu.Lock()
	defer registryMu.Unlock()

	byLanguage[spec.Language] = spec
	byTag[string(spec.Language)] = spec
	for _, a := range spec.Aliases {
		byTag[strings.ToLower(a)] = spec
	}
	for _, ext := range spec.FileExtensions {
		byExt[strings.ToLower(ext)] = spec
	}
}

// Lookup resolves a user-supplied tag ("Python", "py", "c#") to its spec.
func Lookup(tag string) (*LanguageSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	spec, ok := byTag[strings.ToLower(strings.TrimSpace(tag))]
	return spec, ok
}

// ForExtension returns the LanguageSpec for a file extension (e.g. ".go").
func ForExtension(ext string) *LanguageSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return byExt[strings.ToLower(ext)]
}

// ForLanguage returns the LanguageSpec for a language.
func ForLanguage(l Language) *LanguageSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return byLanguage[l]
}

// LanguageForExtension returns the Language for a file extension.
func LanguageForExtension(ext string) (Language, bool) {
	spec := ForExtension(ext)
	if spec == nil {
		return "", false
	}
	return spec.Language, true
}

// AllLanguages returns every registered language, sorted.
func AllLanguages() []Language {
	registryMu.RLock()
	out := make([]Language, 0, len(byLanguage))
	for l := range byLanguage {
		out = append(out, l)
	}
	registryMu.RUnlock()
	slices.Sort(out)
	return out
}
