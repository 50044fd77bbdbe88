package navigator

import (
	"sync"
	"testing"
)

func TestNewSessionRequiresScene(t *testing.T) {
	if _, err := NewSession(SessionOptions{}); err == nil {
		t.Fatalf("expected error without a scene")
	}
}

func TestSessionPostIsOrderedAndConcurrent(t *testing.T) {
	sess, _, _ := newTestSession(t)

	var wg sync.WaitGroup
	var mu sync.Mutex
	count := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.Post(func() {
				mu.Lock()
				count++
				mu.Unlock()
			})
		}()
	}
	wg.Wait()

	if got := sess.Tick(); got != 50 || count != 50 {
		t.Fatalf("tick mismatch: ran %d count %d", got, count)
	}

	var order []int
	sess.Post(func() {
		order = append(order, 1)
		sess.Post(func() { order = append(order, 3) })
	})
	sess.Post(func() { order = append(order, 2) })

	sess.Tick()
	if len(order) != 2 || sess.Pending() != 1 {
		t.Fatalf("nested post should wait for the next tick: %v", order)
	}
	sess.Tick()
	if len(order) != 3 || order[2] != 3 {
		t.Fatalf("order mismatch: %v", order)
	}
}

func TestSessionLocalizedLabels(t *testing.T) {
	scene := newFakeScene()
	a11y := &fakeA11y{}
	sess, err := NewSession(SessionOptions{Scene: scene, Accessibility: a11y, Language: "de"})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if got := sess.BackButtonLabel(); got != "Zurück" {
		t.Fatalf("label mismatch: %q", got)
	}

	engine := NewEngine()
	engine.Start(sess, TransitionRequest{Op: OpPush, Topology: ModeStack, Incoming: testDestination("detail", 20), Depth: 1})
	scene.finishAll()
	sess.Tick()
	if len(a11y.announcements) != 1 || a11y.announcements[0] != "detail, Seite 1" {
		t.Fatalf("announcement mismatch: %v", a11y.announcements)
	}
}
