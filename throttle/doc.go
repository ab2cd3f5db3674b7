// Package throttle provides client-side token rate limiting for LLM API
// calls against a rolling one-minute window.
//
// API keys carry a tokens-per-minute (TPM) limit enforced server-side
// with hard 429 failures. A Throttle tracks estimated consumption locally
// and blocks before the limit is hit, so calls succeed slower instead of
// failing fast.
//
// # Basic Usage
//
// Gate individual calls:
//
//	th := throttle.New(30_000) // 30K TPM key, 85% margin -> 25.5K budget
//	waited, err := th.Wait(ctx, th.Estimate(prompt))
//	if err != nil {
//	    return err
//	}
//	resp, err := callYourAPI(prompt)
//
// Auto-chunk and throttle large content:
//
//	for c := range th.Consume(ctx, largeText) {
//	    if c.Err != nil {
//	        return c.Err
//	    }
//	    resp, err := callYourAPI(c.Text)
//	}
//
// # Window Model
//
// Consumption accumulates against an effective budget of
// min(cap, tpm*margin) per rolling 60-second window. The window rolls
// lazily: any admission check that observes 60 elapsed seconds resets it.
// When a request does not fit the current window, Wait sleeps until the
// window restarts (plus a half-second buffer for clock skew) and the
// request becomes the first charge of the fresh window.
//
// # Strict Mode
//
// A request larger than the effective budget can never fit any window.
// By default it is admitted anyway after a wait, overshooting that one
// window. With WithStrict(true) it fails immediately instead:
//
//	th := throttle.New(30_000).WithStrict(true)
//	_, err := th.Wait(ctx, 50_000)
//	var bex *throttle.BudgetExceededError
//	if errors.As(err, &bex) {
//	    // shrink the request below bex.Budget
//	}
//
// # Sub-Agents and Shared Budgets
//
// Sub-agents sharing an API key with a main session should not consume
// the full TPM. NewSubAgent caps a throttle to a fraction of the total,
// and SharedBudget divides one limit across several named agents by
// weight:
//
//	th := throttle.NewSubAgent(30_000, 0.5) // 15K ceiling
//
//	shared := throttle.NewSharedBudget(30_000).
//	    Assign("main", 3).
//	    Assign("search", 1)
//	searchTh := shared.Throttle("search") // 7.5K ceiling
//
// Budget division is advisory and per-process; there is no cross-process
// coordination.
//
// # Configuration Files
//
// Config can be loaded from YAML, TOML, or JSON, validated against a
// generated JSON schema, and watched for changes:
//
//	cfg, err := throttle.LoadConfig("throttle.yaml")
//	th := cfg.Throttle()
//
// # Concurrency
//
// A Throttle may be shared across goroutines: window state is guarded by
// a mutex that is never held while sleeping. Waits are cancellable
// through the context and cancelled requests are not charged.
package throttle
