// Package commission resolves transactions into dated, probability-weighted
// installments and reduces them into the dashboard's period, branch, agent,
// monthly, trend and plan-vs-actual views.
//
// Everything here is a pure function of its inputs: callers fetch
// transactions, tranches, agents and targets themselves and pass snapshots in.
// Returned slices are freshly allocated, except those handed out by
// CachedResolver, which are shared between callers and must not be modified.
package commission
