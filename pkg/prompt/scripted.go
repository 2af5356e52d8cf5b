package prompt

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrScriptExhausted is returned when a Scripted driver runs out of answers.
var ErrScriptExhausted = errors.New("prompt: script exhausted")

// Answer is one scripted reply. Only the field matching the prompt kind is
// read; Err, when set, is returned instead.
type Answer struct {
	Text    string
	Bool    bool
	Index   int
	Indices []int
	Err     error
}

// Scripted replays answers in order. It is meant for tests and
// non-interactive runs.
type Scripted struct {
	mu      sync.Mutex
	answers []Answer
	asked   []string
	info    []string
}

// NewScripted returns a driver replaying answers.
func NewScripted(answers ...Answer) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) next(ctx context.Context, message string) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, message)
	if len(s.answers) == 0 {
		return Answer{}, fmt.Errorf("%w at %q", ErrScriptExhausted, message)
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	if answer.Err != nil {
		return Answer{}, answer.Err
	}
	return answer, nil
}

func (s *Scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	answer, err := s.next(ctx, cfg.Message)
	if err != nil {
		return "", err
	}
	text := answer.Text
	if text == "" {
		text = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(text); err != nil {
			return "", err
		}
	}
	return text, nil
}

func (s *Scripted) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	answer, err := s.next(ctx, cfg.Message)
	if err != nil {
		return false, err
	}
	return answer.Bool, nil
}

func (s *Scripted) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	answer, err := s.next(ctx, cfg.Message)
	if err != nil {
		return 0, err
	}
	if answer.Index < 0 || answer.Index >= len(cfg.Options) {
		return 0, fmt.Errorf("prompt: scripted index %d out of range for %q", answer.Index, cfg.Message)
	}
	return answer.Index, nil
}

func (s *Scripted) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	answer, err := s.next(ctx, cfg.Message)
	if err != nil {
		return nil, err
	}
	if answer.Indices == nil {
		return append([]int(nil), cfg.Defaults...), nil
	}
	return append([]int(nil), answer.Indices...), nil
}

func (s *Scripted) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.info = append(s.info, msg)
	return nil
}

// Asked returns the prompt messages seen so far.
func (s *Scripted) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}

// Infos returns the informational messages printed so far.
func (s *Scripted) Infos() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.info...)
}
