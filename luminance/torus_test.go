package luminance

import "testing"

func TestTorusSceneRendersRingAndBackground(t *testing.T) {
	s := NewTorusScene(64, 64)
	s.Workers = 3
	if err := s.Render(0); err != nil {
		t.Fatal(err)
	}
	if c := s.At(0, 0); c != backgroundColor {
		t.Fatalf("corner = %v, want background", c)
	}
	lit := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if s.At(x, y) != backgroundColor {
				lit++
			}
		}
	}
	if lit == 0 || lit == 64*64 {
		t.Fatalf("lit pixels = %d, expected a partial ring", lit)
	}
}

func TestTorusSceneRotationChangesFrame(t *testing.T) {
	a := NewTorusScene(48, 48)
	b := NewTorusScene(48, 48)
	a.Render(0)
	b.Render(1.3)
	diff := 0
	for i := range a.Image().Pix {
		if a.Image().Pix[i] != b.Image().Pix[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Fatal("rotated frame identical to unrotated frame")
	}
}

func TestTorusSceneWorkerCountIrrelevant(t *testing.T) {
	one := NewTorusScene(40, 30)
	one.Workers = 1
	many := NewTorusScene(40, 30)
	many.Workers = 7
	one.Render(0.4)
	many.Render(0.4)
	for i := range one.Image().Pix {
		if one.Image().Pix[i] != many.Image().Pix[i] {
			t.Fatalf("pixel byte %d differs between worker counts", i)
		}
	}
}

func TestCLSceneSatisfiesProvider(t *testing.T) {
	var _ Provider = (*CLScene)(nil)
	var _ Provider = (*TorusScene)(nil)
}

func TestNewSceneFallsBackToCPU(t *testing.T) {
	p, release := NewScene(16, false)
	defer release()
	if _, ok := p.(*TorusScene); !ok {
		t.Fatalf("NewScene = %T, want *TorusScene", p)
	}
	if w, h := p.Bounds(); w != 16 || h != 16 {
		t.Fatalf("bounds = %dx%d", w, h)
	}
}
