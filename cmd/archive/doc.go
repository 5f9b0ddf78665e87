// Package main runs the HTTP record archive used by drift during development
// and tests. It serves a record library directory so other machines can list
// and fetch ground-motion records, and accepts uploads of parsed records.
//
// HTTP API
//
//	GET /records
//	    Return summaries of every record in the library (name, dt, points,
//	    unit) as JSON.
//
//	GET /records/{name}
//	    Return the full record document for {name}: samples, time step and
//	    unit, exactly as the local library stores it.
//
//	POST /records
//	    Store an uploaded record document. The record is validated before it
//	    is written; invalid records are rejected with 400.
//
// Behaviour
//
//   - Records live as JSON files in the served directory (--dir, default
//     ./records) and survive restarts.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - Every request is logged with method, path, remote and duration.
//   - The default listen address is :8025.
//
// The archive performs no authentication; run it on a trusted network.
package main
