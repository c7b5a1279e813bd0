package pge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunHeadlessFrames(t *testing.T) {
	g := &recordingGame{}
	err := RunHeadless(context.Background(), g, testConfig(), HeadlessConfig{Hz: 1000, Frames: 3})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	want := "create,update,update,update,destroy"
	if got := strings.Join(g.calls, ","); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	g := &recordingGame{}
	err := RunHeadless(ctx, g, testConfig(), HeadlessConfig{Hz: 200})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if g.calls[len(g.calls)-1] != "destroy" {
		t.Errorf("last call = %s, want destroy", g.calls[len(g.calls)-1])
	}
}

func TestRunHeadlessUpdateError(t *testing.T) {
	boom := errors.New("boom")
	g := &recordingGame{updateErr: boom}
	err := RunHeadless(context.Background(), g, testConfig(), HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if got := strings.Join(g.calls, ","); got != "create,update,destroy" {
		t.Errorf("calls = %s", got)
	}
}

func TestRunHeadlessInvalidConfig(t *testing.T) {
	g := &recordingGame{}
	cfg := testConfig()
	cfg.PixelWidth = 0
	if err := RunHeadless(context.Background(), g, cfg, HeadlessConfig{}); err == nil {
		t.Fatal("expected error")
	}
	if len(g.calls) != 0 {
		t.Errorf("game callbacks ran: %v", g.calls)
	}
}

func TestRunHeadlessScript(t *testing.T) {
	s, err := LoadInputScript([]byte(`{"steps": [{"action": "click", "x": 7, "y": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	var pressedAt []int
	g := &recordingGame{onUpdate: func(ctx *Context, _ float32) error {
		if ctx.Mouse().Button(MouseLeft).Pressed {
			pressedAt = append(pressedAt, ctx.Mouse().X())
		}
		return nil
	}}
	err = RunHeadless(context.Background(), g, testConfig(), HeadlessConfig{Hz: 1000, Frames: 4, Script: s})
	if err != nil {
		t.Fatal(err)
	}
	if len(pressedAt) != 1 || pressedAt[0] != 7 {
		t.Errorf("pressed frames = %v, want one press at x=7", pressedAt)
	}
	if !s.Done() {
		t.Error("script not done after 4 frames")
	}
}
