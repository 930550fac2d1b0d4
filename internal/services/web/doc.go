// Package web hosts the studio website: home page, portfolio gallery and the
// contact form API.
//
// Route modules are composed under a shared middleware chain (panic
// recovery, request ids, request logging) and wrapped with otelhttp so every
// request and the contact pipeline spans it starts share one trace.
package web
