// Package app wires the calculator together.
//
// New builds, in order, the logger, the optional Prometheus metrics, the
// math provider and the service registry from a config.Config. The result
// is the single in-process entry point for running operator tools.
//
// Example Usage:
//
//	a, err := app.New(config.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	result, err := a.Execute(ctx, "math.log", map[string]interface{}{
//	    "base": 2.0, "antilogarithm": 8.0,
//	})
package app
