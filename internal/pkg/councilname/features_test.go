package councilname

import (
	"fmt"
	"testing"

	"github.com/cucumber/godog"
)

type namingScenario struct {
	gradYear int
	fall     *int
	spring   *int
	resolved *int
	name     string
}

func (s *namingScenario) aCouncilGraduatingIn(year int) error {
	s.gradYear = year
	return nil
}

func (s *namingScenario) theFallYearIs(year int) error {
	s.fall = &year
	return nil
}

func (s *namingScenario) theSpringYearIs(year int) error {
	s.spring = &year
	return nil
}

func (s *namingScenario) theCouncilNameIsComputed() error {
	s.resolved = ResolveSpring(s.fall, s.spring)
	s.name = Name(s.gradYear, s.resolved)
	return nil
}

func (s *namingScenario) theResolvedSpringYearIs(year int) error {
	if s.resolved == nil {
		return fmt.Errorf("expected spring year %d, got none", year)
	}
	if *s.resolved != year {
		return fmt.Errorf("expected spring year %d, got %d", year, *s.resolved)
	}
	return nil
}

func (s *namingScenario) theCouncilNameIs(name string) error {
	if s.name != name {
		return fmt.Errorf("expected council name %q, got %q", name, s.name)
	}
	return nil
}

func (s *namingScenario) theCouncilNameIsNotYetComputable() error {
	if s.name != "" {
		return fmt.Errorf("expected no council name, got %q", s.name)
	}
	return nil
}

func initializeNamingScenario(ctx *godog.ScenarioContext) {
	s := &namingScenario{}

	ctx.Step(`^a council graduating in (\d+)$`, s.aCouncilGraduatingIn)
	ctx.Step(`^the fall year is (\d+)$`, s.theFallYearIs)
	ctx.Step(`^the spring year is (\d+)$`, s.theSpringYearIs)
	ctx.Step(`^the council name is computed$`, s.theCouncilNameIsComputed)
	ctx.Step(`^the resolved spring year is (\d+)$`, s.theResolvedSpringYearIs)
	ctx.Step(`^the council name is "([^"]*)"$`, s.theCouncilNameIs)
	ctx.Step(`^the council name is not yet computable$`, s.theCouncilNameIsNotYetComputable)
}

func TestCouncilNamingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "council-naming",
		ScenarioInitializer: initializeNamingScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run council naming features")
	}
}
