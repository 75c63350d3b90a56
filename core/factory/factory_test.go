package factory

import "testing"

type widget struct{ Size int }

type widgetConf struct {
	Size int `json:"size"`
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*widget]()
	if err := reg.Register("w", func(conf map[string]any) (*widget, error) {
		var c widgetConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &widget{Size: c.Size}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "w", Conf: map[string]any{"size": 7}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Size != 7 {
		t.Fatalf("expected 7 got %d", inst.Size)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.Register("y", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "missing"}); err == nil {
		t.Fatal("expected unknown type error")
	}
}
