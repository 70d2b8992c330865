package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/alexandernizov/mogakco/internal/client/remote"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeSignupUseCase struct {
	got remote.SignupRequest
	err error
}

func (f *fakeSignupUseCase) Signup(_ context.Context, req remote.SignupRequest) (domain.User, error) {
	f.got = req
	if f.err != nil {
		return domain.User{}, f.err
	}
	return domain.User{ID: "new", Email: req.Email, Name: req.Name, Languages: req.Languages}, nil
}

type signupHarness struct {
	email, password, name, introduce, languages chan string
	tap, back                                   chan struct{}
	out                                         SignupOutput
	spy                                         *coordinatorSpy
}

func bindSignup(t *testing.T, uc *fakeSignupUseCase) *signupHarness {
	h := &signupHarness{
		email: make(chan string), password: make(chan string), name: make(chan string),
		introduce: make(chan string), languages: make(chan string),
		tap: make(chan struct{}), back: make(chan struct{}),
		spy: newCoordinatorSpy(),
	}
	h.out = NewSignupViewModel(discard(), h.spy, uc).Transform(newScope(t), SignupInput{
		Email:     h.email,
		Password:  h.password,
		Name:      h.name,
		Introduce: h.introduce,
		Languages: h.languages,
		SignupTap: h.tap,
		BackTap:   h.back,
	})
	return h
}

func TestSignupViewModel_Success(t *testing.T) {
	uc := &fakeSignupUseCase{}
	h := bindSignup(t, uc)

	h.email <- "a@x.com"
	h.password <- "pw"
	h.name <- "kim"
	h.introduce <- "hi"
	h.languages <- "go, swift ,"
	h.tap <- struct{}{}

	user := recv(t, h.out.SignedUp)
	assert.Equal(t, "new", user.ID)
	assert.Equal(t, remote.SignupRequest{
		Email:     "a@x.com",
		Password:  "pw",
		Name:      "kim",
		Introduce: "hi",
		Languages: []string{"go", "swift"},
	}, uc.got)
	assert.Equal(t, "Finish", recv(t, h.spy.event))
}

func TestSignupViewModel_Failure(t *testing.T) {
	backendErr := errors.New("email already in use")
	h := bindSignup(t, &fakeSignupUseCase{err: backendErr})

	h.email <- "a@x.com"
	h.tap <- struct{}{}

	assert.Equal(t, backendErr, recv(t, h.out.Failed))
	recvNone(t, h.out.SignedUp)
}

func TestSignupViewModel_BackTap(t *testing.T) {
	h := bindSignup(t, &fakeSignupUseCase{})

	h.back <- struct{}{}

	assert.Equal(t, "PopScreen", recv(t, h.spy.event))
}
