package game

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func sampleRunState() *RunState {
	rs := NewRunState(ModeEndless, false, PlayerSnapshot{
		X: 640, Y: 360,
		Speed:           250,
		MaxHealth:       100,
		Health:          40,
		AttackSpeed:     500,
		ProjectileCount: 1,
		KillCount:       25,
		DashCharges:     2,
		DashMaxCharges:  3,
	})
	rs.Level = 7
	rs.UpgradePoints = 3
	return rs
}

func TestRunSerializerRoundTrip(t *testing.T) {
	serializer := NewRunSerializer(newTestDirStorage(t))
	rs := sampleRunState()
	rs.Zen = true
	rs.ZenWave = 3
	rs.Skills = SkillProgress{
		Learned:  []string{"dash"},
		Unlocked: []UnlockedUpgrade{{Skill: "dash", Upgrade: "dash_blood"}},
	}

	if err := serializer.Save("save_alice.sav", rs); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !serializer.Exists("save_alice.sav") {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := serializer.Load("save_alice.sav")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, rs) {
		t.Errorf("Load() = %+v, want %+v", loaded, rs)
	}
	if loaded.Level != 7 || loaded.UpgradePoints != 3 || loaded.Mode != ModeEndless ||
		loaded.Player.Health != 40 || loaded.Player.MaxHealth != 100 || loaded.Player.KillCount != 25 {
		t.Errorf("restored fields mismatch: %+v", loaded)
	}
}

func TestRunSerializerIdempotentBytes(t *testing.T) {
	storage := NewMemStorage()
	serializer := NewRunSerializer(storage)
	rs := sampleRunState()

	if err := serializer.Save("save_alice.sav", rs); err != nil {
		t.Fatal(err)
	}
	first, _ := storage.Load("save_alice.sav")
	if err := serializer.Save("save_alice.sav", rs); err != nil {
		t.Fatal(err)
	}
	second, _ := storage.Load("save_alice.sav")

	if !bytes.Equal(first, second) {
		t.Error("saving the same run twice produced different bytes")
	}
}

func TestRunSerializerLoadMissing(t *testing.T) {
	serializer := NewRunSerializer(NewMemStorage())

	for _, ref := range []string{"", "save_nobody.sav"} {
		if _, err := serializer.Load(ref); !errors.Is(err, ErrNotFound) {
			t.Errorf("Load(%q) = %v, want ErrNotFound", ref, err)
		}
	}
	if serializer.Exists("") {
		t.Error("Exists(\"\") should be false")
	}
}

func TestRunSerializerCorruptSave(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(rs *RunState)
	}{
		{"level zero", func(rs *RunState) { rs.Level = 0 }},
		{"unknown mode", func(rs *RunState) { rs.Mode = "arcade" }},
		{"health above max", func(rs *RunState) { rs.Player.Health = 150 }},
		{"negative points", func(rs *RunState) { rs.UpgradePoints = -1 }},
		{"zen wave outside zen", func(rs *RunState) { rs.ZenWave = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := NewMemStorage()
			serializer := NewRunSerializer(storage)

			rs := sampleRunState()
			tt.mutate(rs)
			if err := rs.Validate(); !errors.Is(err, ErrCorruptData) {
				t.Fatalf("Validate() = %v, want ErrCorruptData", err)
			}
			if _, err := EncodeRunState(rs); err == nil {
				t.Error("EncodeRunState() should refuse an invalid run")
			}

			raw, err := encodeUnchecked(rs)
			if err != nil {
				t.Fatal(err)
			}
			if err := storage.Save("save_alice.sav", raw); err != nil {
				t.Fatal(err)
			}
			if _, err := serializer.Load("save_alice.sav"); !errors.Is(err, ErrCorruptSave) {
				t.Errorf("Load() = %v, want ErrCorruptSave", err)
			}
			if serializer.HasValidSave("save_alice.sav") {
				t.Error("HasValidSave() should be false for a corrupt save")
			}
		})
	}
}

func TestRunSerializerGarbage(t *testing.T) {
	storage := NewMemStorage()
	serializer := NewRunSerializer(storage)
	if err := storage.Save("save_alice.sav", []byte("definitely not gob")); err != nil {
		t.Fatal(err)
	}

	_, err := serializer.Load("save_alice.sav")
	if !errors.Is(err, ErrCorruptSave) || !errors.Is(err, ErrCorruptData) {
		t.Errorf("Load(garbage) = %v, want ErrCorruptSave wrapping ErrCorruptData", err)
	}
}

func TestRunSerializerVersionMismatch(t *testing.T) {
	storage := NewMemStorage()
	serializer := NewRunSerializer(storage)

	raw, err := encodeWithVersion(sampleRunState(), RunSaveVersion+1)
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.Save("save_alice.sav", raw); err != nil {
		t.Fatal(err)
	}
	if _, err := serializer.Load("save_alice.sav"); !errors.Is(err, ErrCorruptSave) {
		t.Errorf("Load() = %v, want ErrCorruptSave", err)
	}
}

func TestRunSerializerDelete(t *testing.T) {
	serializer := NewRunSerializer(NewMemStorage())
	if err := serializer.Save("save_alice.sav", sampleRunState()); err != nil {
		t.Fatal(err)
	}
	if err := serializer.Delete("save_alice.sav"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if serializer.Exists("save_alice.sav") {
		t.Error("save still exists after Delete")
	}
	if err := serializer.Delete("save_alice.sav"); err != nil {
		t.Errorf("second Delete() error: %v", err)
	}
}

func encodeUnchecked(rs *RunState) ([]byte, error) {
	return encodeWithVersion(rs, RunSaveVersion)
}
