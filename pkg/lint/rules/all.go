package rules

// Import all rule subpackages to register them with the global registry.
import (
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules/compatibility"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules/convention"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules/pitfall"
	_ "github.com/leapstack-labs/leapcss/pkg/lint/rules/validity"
)
