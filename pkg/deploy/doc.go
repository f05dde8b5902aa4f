// Package deploy exports a rendered site to disk and uploads it to S3.
//
// Export performs an in-process GET request for each exportable path and
// writes the response body using pretty URLs: "/" becomes index.html and
// "/about" becomes about/index.html, so the output can be served by any
// static file host.
//
// Uploader pushes an export directory to an S3 bucket. The S3 client is
// injected behind a one-method interface so deployments can target any
// S3-compatible store and tests can use a fake.
package deploy
