package service

import (
	"testing"

	"go-restaurant-pos/internal/model"
	"go-restaurant-pos/internal/store"
	"go-restaurant-pos/pkg/jwt"

	"github.com/google/uuid"
)

func newAuthFixture(t *testing.T) (*store.Store, AuthService, model.User) {
	t.Helper()
	st := store.New(model.RestaurantSettings{TaxRate: 10})
	user := model.User{Username: "maria", FullName: "Maria Lopez", Role: model.RoleCashier, IsActive: true}
	if err := user.SetPassword("s3cret"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	user = st.AddUser(user)
	return st, NewAuthService(st), user
}

func TestLoginIssuesValidToken(t *testing.T) {
	_, svc, user := newAuthFixture(t)

	resp, err := svc.Login(&LoginRequest{Username: "maria", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.ID != user.ID || resp.User.Username != "maria" {
		t.Errorf("response user = %+v", resp.User)
	}

	claims, err := jwt.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != model.RoleCashier {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginRejections(t *testing.T) {
	st, svc, _ := newAuthFixture(t)

	if _, err := svc.Login(&LoginRequest{Username: "maria", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(&LoginRequest{Username: "nobody", Password: "s3cret"}); err != ErrInvalidCredentials {
		t.Errorf("unknown user err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(&LoginRequest{Username: "maria"}); err == nil {
		t.Errorf("missing password passed validation")
	}

	inactive := model.User{Username: "gone", FullName: "Former Staff", Role: model.RoleWaiter, IsActive: false}
	if err := inactive.SetPassword("pw"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	st.AddUser(inactive)
	if _, err := svc.Login(&LoginRequest{Username: "gone", Password: "pw"}); err != ErrUserInactive {
		t.Errorf("inactive user err = %v, want ErrUserInactive", err)
	}
}

func TestGetProfile(t *testing.T) {
	_, svc, user := newAuthFixture(t)

	profile, err := svc.GetProfile(user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.FullName != "Maria Lopez" {
		t.Errorf("profile = %+v", profile)
	}
	if _, err := svc.GetProfile(uuid.New()); err != store.ErrUserNotFound {
		t.Errorf("unknown user err = %v, want ErrUserNotFound", err)
	}
}
