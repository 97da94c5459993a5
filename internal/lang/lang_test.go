package lang

import (
	"slices"
	"testing"
	"unsafe"
)

func TestForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		lang Language
	}{
		{".py", Python},
		{".go", Go},
		{".js", JavaScript},
		{".ts", TypeScript},
		{".tsx", TSX},
		{".rs", Rust},
		{".java", Java},
		{".c", C},
		{".cpp", CPP},
		{".h", CPP},
		{".cs", CSharp},
		{".php", PHP},
		{".rb", Ruby},
		{".lua", Lua},
		{".scala", Scala},
		{".kt", Kotlin},
		{".kts", Kotlin},
		{".sh", Bash},
		{".css", CSS},
		{".html", HTML},
		{".yml", YAML},
		{".toml", TOML},
		{".tf", HCL},
		{".ml", OCaml},
		{".zig", Zig},
		{".m", ObjectiveC},
		{".dart", Dart},
		{".sql", SQL},
		{".swift", Swift},
		{".dockerfile", Dockerfile},
		{".gradle", Groovy},
		{".R", R},
		{".scss", SCSS},
		{".exs", Elixir},
		{".hrl", Erlang},
		{".hs", Haskell},
		{".pm", Perl},
		{".PY", Python},
	}
	for _, tt := range tests {
		spec := ForExtension(tt.ext)
		if spec == nil {
			t.Errorf("ForExtension(%q) = nil, want %s", tt.ext, tt.lang)
			continue
		}
		if spec.Language != tt.lang {
			t.Errorf("ForExtension(%q).Language = %s, want %s", tt.ext, spec.Language, tt.lang)
		}
	}
}

func TestForLanguage(t *testing.T) {
	for _, lang := range AllLanguages() {
		spec := ForLanguage(lang)
		if spec == nil {
			t.Errorf("ForLanguage(%s) = nil", lang)
			continue
		}
		if spec.Grammar == nil {
			t.Errorf("ForLanguage(%s).Grammar is nil", lang)
		}
	}
}

func TestAllLanguagesSortedAndComplete(t *testing.T) {
	all := AllLanguages()
	if !slices.IsSorted(all) {
		t.Errorf("AllLanguages not sorted: %v", all)
	}
	for _, want := range []Language{Python, JavaScript, TypeScript, TSX, Go, Rust, Java, C, CPP, CSharp, PHP, Ruby, Scala, Kotlin, Lua, Bash, CSS, HTML, YAML, TOML, HCL, OCaml, Zig, ObjectiveC, Dart, SQL, Swift, Dockerfile, Groovy, R, SCSS, Elixir, Erlang, Haskell, Perl} {
		if !slices.Contains(all, want) {
			t.Errorf("AllLanguages missing %s", want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		tag  string
		want Language
	}{
		{"python", Python},
		{"Python", Python},
		{" py ", Python},
		{"golang", Go},
		{"c#", CSharp},
		{"csharp", CSharp},
		{"c-sharp", CSharp},
		{"c++", CPP},
		{"ts", TypeScript},
		{"yml", YAML},
		{"objective-c", ObjectiveC},
	}
	for _, tt := range tests {
		spec, ok := Lookup(tt.tag)
		if !ok {
			t.Errorf("Lookup(%q) not found, want %s", tt.tag, tt.want)
			continue
		}
		if spec.Language != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.tag, spec.Language, tt.want)
		}
	}

	if _, ok := Lookup("brainfuck"); ok {
		t.Error("Lookup(brainfuck) should fail")
	}
}

func TestUnknownExtension(t *testing.T) {
	if spec := ForExtension(".xyz"); spec != nil {
		t.Errorf("ForExtension(.xyz) should be nil, got %v", spec)
	}
	if _, ok := LanguageForExtension(".xyz"); ok {
		t.Error("LanguageForExtension(.xyz) should fail")
	}
}

func TestRegisterExtends(t *testing.T) {
	const fake Language = "fake-lang-for-test"
	Register(&LanguageSpec{
		Language:       fake,
		Aliases:        []string{"FakeAlias"},
		FileExtensions: []string{".fake"},
		Grammar:        func() unsafe.Pointer { return nil },
	})

	if spec, ok := Lookup("fakealias"); !ok || spec.Language != fake {
		t.Errorf("Lookup(fakealias) = %v, %v", spec, ok)
	}
	if l, ok := LanguageForExtension(".FAKE"); !ok || l != fake {
		t.Errorf("LanguageForExtension(.FAKE) = %s, %v", l, ok)
	}
	if !slices.Contains(AllLanguages(), fake) {
		t.Error("registered language missing from AllLanguages")
	}
}
