package view

import (
	"github.com/alexandernizov/mogakco/internal/client/viewmodel"
	"github.com/alexandernizov/mogakco/internal/domain"
	"github.com/alexandernizov/mogakco/internal/pkg/async"
)

const (
	LoginTitle  = "로그인"
	SignupTitle = "회원가입"
)

type LoginScreen struct {
	Email    string
	Password string
	Err      error
	// UserID is set once a login succeeds.
	UserID string

	in       inbox
	email    chan string
	password chan string
	login    chan struct{}
	signup   chan struct{}
}

func NewLoginScreen() *LoginScreen {
	return &LoginScreen{
		email:    make(chan string),
		password: make(chan string),
		login:    make(chan struct{}),
		signup:   make(chan struct{}),
	}
}

func (s *LoginScreen) Title() string {
	return LoginTitle
}

func (s *LoginScreen) TypeEmail(v string) {
	if s.in.dispatch(func() { s.Email = v }) {
		emit(&s.in, s.email, v)
	}
}

func (s *LoginScreen) TypePassword(v string) {
	if s.in.dispatch(func() { s.Password = v }) {
		emit(&s.in, s.password, v)
	}
}

func (s *LoginScreen) TapLogin() {
	emit(&s.in, s.login, struct{}{})
}

func (s *LoginScreen) TapSignup() {
	emit(&s.in, s.signup, struct{}{})
}

func NewLoginController(vm *viewmodel.LoginViewModel) *Controller {
	s := NewLoginScreen()
	return NewController(s, func(scope *async.Scope, d Dispatcher) {
		s.in.open(scope.Context(), d)

		out := vm.Transform(scope, viewmodel.LoginInput{
			Email:     s.email,
			Password:  s.password,
			LoginTap:  s.login,
			SignupTap: s.signup,
		})

		forward(scope, d, out.LoggedIn, func(id string) {
			s.UserID = id
			s.Err = nil
		})
		forward(scope, d, out.Failed, func(err error) {
			s.Err = err
		})
	})
}

// SignupField names one text field of the signup form.
type SignupField int

const (
	FieldEmail SignupField = iota
	FieldPassword
	FieldName
	FieldIntroduce
	FieldLanguages
	FieldCareers
	FieldCategorys
)

var signupFieldNames = map[SignupField]string{
	FieldEmail:     "email",
	FieldPassword:  "password",
	FieldName:      "name",
	FieldIntroduce: "introduce",
	FieldLanguages: "languages",
	FieldCareers:   "careers",
	FieldCategorys: "categorys",
}

func (f SignupField) String() string {
	return signupFieldNames[f]
}

func AllSignupFields() []SignupField {
	return []SignupField{FieldEmail, FieldPassword, FieldName, FieldIntroduce, FieldLanguages, FieldCareers, FieldCategorys}
}

type SignupScreen struct {
	Fields map[SignupField]string
	Err    error
	// User is set once the account is created.
	User *domain.User

	in     inbox
	inputs map[SignupField]chan string
	signup chan struct{}
	back   chan struct{}
}

func NewSignupScreen() *SignupScreen {
	s := &SignupScreen{
		Fields: make(map[SignupField]string),
		inputs: make(map[SignupField]chan string),
		signup: make(chan struct{}),
		back:   make(chan struct{}),
	}
	for _, f := range AllSignupFields() {
		s.inputs[f] = make(chan string)
	}
	return s
}

func (s *SignupScreen) Title() string {
	return SignupTitle
}

// Type sets field to v. List fields take comma separated values.
func (s *SignupScreen) Type(field SignupField, v string) {
	ch, ok := s.inputs[field]
	if !ok {
		return
	}
	if s.in.dispatch(func() { s.Fields[field] = v }) {
		emit(&s.in, ch, v)
	}
}

func (s *SignupScreen) TapSignup() {
	emit(&s.in, s.signup, struct{}{})
}

func (s *SignupScreen) TapBack() {
	emit(&s.in, s.back, struct{}{})
}

func NewSignupController(vm *viewmodel.SignupViewModel) *Controller {
	s := NewSignupScreen()
	return NewController(s, func(scope *async.Scope, d Dispatcher) {
		s.in.open(scope.Context(), d)

		out := vm.Transform(scope, viewmodel.SignupInput{
			Email:     s.inputs[FieldEmail],
			Password:  s.inputs[FieldPassword],
			Name:      s.inputs[FieldName],
			Introduce: s.inputs[FieldIntroduce],
			Languages: s.inputs[FieldLanguages],
			Careers:   s.inputs[FieldCareers],
			Categorys: s.inputs[FieldCategorys],
			SignupTap: s.signup,
			BackTap:   s.back,
		})

		forward(scope, d, out.SignedUp, func(user domain.User) {
			s.User = &user
			s.Err = nil
		})
		forward(scope, d, out.Failed, func(err error) {
			s.Err = err
		})
	})
}
