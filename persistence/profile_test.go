package persistence

import "testing"

func TestUnopenedStoreFallsBack(t *testing.T) {
	var s *Store
	def := Profile{LastUsername: "nemo", MusicVolume: 0.5}
	if got := s.Load(def); got != def {
		t.Fatalf("Load() = %+v, want %+v", got, def)
	}
	if err := s.Save(def); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	empty := &Store{}
	if got := empty.Load(def); got != def {
		t.Fatalf("Load() on empty store = %+v, want %+v", got, def)
	}
}
