package facade

import "testing"

func TestNewWiresSandboxBaseURLAndBearerCredentials(t *testing.T) {
	c := New(Configuration{
		Environment: Sandbox,
		Credentials: Credentials{Token: "test-token"},
	})
	if c.REST == nil {
		t.Fatal("expected a non-nil REST client")
	}
	if c.NewSession() == nil {
		t.Fatal("expected NewSession to return a non-nil session bound to the facade's REST client")
	}
}

func TestNewDefaultsToProductionEnvironment(t *testing.T) {
	if (Environment(0)) != Production {
		t.Fatal("expected the zero-value Environment to be Production")
	}
}
