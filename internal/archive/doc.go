// Package archive talks to a remote ground-motion archive over HTTP.
//
// The archive exposes the record library as JSON documents: GET /records
// lists summaries and GET /records/{name} returns one full record. The
// client here implements domain.ArchiveClient on top of that API.
package archive
