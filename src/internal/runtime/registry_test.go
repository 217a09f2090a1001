package runtime

import (
	"testing"

	"github.com/javax0/use/src/internal/shell"
)

// mockProvider is a minimal test implementation of the Provider interface
type mockProvider struct {
	name        string
	displayName string
}

func (m *mockProvider) Name() string           { return m.name }
func (m *mockProvider) DisplayName() string    { return m.displayName }
func (m *mockProvider) DefaultVersion() string { return "1" }
func (m *mockProvider) Export(version string, env Env) shell.Assignment {
	return shell.Assignment{Name: "MOCK_HOME", Value: "/mock/" + version}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.providers == nil {
		t.Error("NewRegistry() did not initialize providers map")
	}
	if len(r.providers) != 0 {
		t.Errorf("NewRegistry() providers map has %d entries, want 0", len(r.providers))
	}
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name        string
		providers   []*mockProvider
		expectError bool
	}{
		{
			name: "register single provider",
			providers: []*mockProvider{
				{name: "test", displayName: "Test"},
			},
			expectError: false,
		},
		{
			name: "register multiple providers",
			providers: []*mockProvider{
				{name: "test1", displayName: "Test 1"},
				{name: "test2", displayName: "Test 2"},
			},
			expectError: false,
		},
		{
			name: "register duplicate provider",
			providers: []*mockProvider{
				{name: "test", displayName: "Test 1"},
				{name: "test", displayName: "Test 2"},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			var err error
			for _, p := range tt.providers {
				err = r.Register(p)
			}

			if tt.expectError && err == nil {
				t.Error("Register() expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Register() unexpected error: %v", err)
			}
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()
	provider := &mockProvider{name: "test", displayName: "Test"}
	if err := r.Register(provider); err != nil {
		t.Fatalf("Failed to register provider: %v", err)
	}

	tests := []struct {
		name        string
		searchName  string
		expectError bool
	}{
		{
			name:        "get existing provider",
			searchName:  "test",
			expectError: false,
		},
		{
			name:        "get non-existent provider",
			searchName:  "nonexistent",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Get(tt.searchName)

			if tt.expectError {
				if err == nil {
					t.Error("Get() expected error, got nil")
				}
				if p != nil {
					t.Error("Get() expected nil provider on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Get() unexpected error: %v", err)
			}
			if p.Name() != tt.searchName {
				t.Errorf("Get() returned provider with name %q, want %q", p.Name(), tt.searchName)
			}
		})
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"python", "java", "graal"} {
		if err := r.Register(&mockProvider{name: name, displayName: name}); err != nil {
			t.Fatalf("Failed to register provider: %v", err)
		}
	}

	list := r.List()
	expected := []string{"graal", "java", "python"}
	if len(list) != len(expected) {
		t.Fatalf("List() returned %d names, want %d", len(list), len(expected))
	}
	for i := range expected {
		if list[i] != expected[i] {
			t.Errorf("List()[%d] = %q, want %q", i, list[i], expected[i])
		}
	}

	all := r.GetAll()
	for i := range expected {
		if all[i].Name() != expected[i] {
			t.Errorf("GetAll()[%d].Name() = %q, want %q", i, all[i].Name(), expected[i])
		}
	}
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&mockProvider{name: "test", displayName: "Test"}); err != nil {
		t.Fatalf("Failed to register provider: %v", err)
	}

	if !r.Has("test") {
		t.Error("Has(\"test\") = false, want true")
	}
	if r.Has("nonexistent") {
		t.Error("Has(\"nonexistent\") = true, want false")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	provider := &mockProvider{name: "test", displayName: "Test"}

	done := make(chan bool)
	go func() {
		_ = r.Register(provider)
		done <- true
	}()

	go func() {
		r.Has("test")
		r.List()
		done <- true
	}()

	<-done
	<-done

	if !r.Has("test") {
		t.Error("Concurrent Register() did not work correctly")
	}
}

func TestMockProviderContract(t *testing.T) {
	harness := &ProviderTestHarness{
		Provider:               &mockProvider{name: "mock", displayName: "Mock"},
		T:                      t,
		ExpectedName:           "mock",
		ExpectedDisplayName:    "Mock",
		ExpectedDefaultVersion: "1",
		ExpectedVariable:       "MOCK_HOME",
		SampleVersion:          "2.0",
	}

	harness.RunAllTests()
}
