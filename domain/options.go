package domain

// WithQueryCatalog sets the catalog used to look up filter operators.
func WithQueryCatalog(c Catalog) QueryOption {
	return func(qo *QueryOptions) {
		qo.Catalog = c
	}
}

// WithQueryResolver sets the resolver used to read property paths.
func WithQueryResolver(r Resolver) QueryOption {
	return func(qo *QueryOptions) {
		qo.Resolver = r
	}
}

// WithQueryComparer sets the comparer used by the default sorter.
func WithQueryComparer(c Comparer) QueryOption {
	return func(qo *QueryOptions) {
		qo.Comparer = c
	}
}

// WithQuerySorter sets the sorter used to order results.
func WithQuerySorter(s Sorter) QueryOption {
	return func(qo *QueryOptions) {
		qo.Sorter = s
	}
}

// WithQueryProjector sets the projector used to shape results.
func WithQueryProjector(p Projector) QueryOption {
	return func(qo *QueryOptions) {
		qo.Projector = p
	}
}

// WithQueryDecoder sets the decoder used by Scan.
func WithQueryDecoder(d Decoder) QueryOption {
	return func(qo *QueryOptions) {
		qo.Decoder = d
	}
}

// WithQueryLogger sets the logger used to trace query activity.
func WithQueryLogger(l Logger) QueryOption {
	return func(qo *QueryOptions) {
		qo.Logger = l
	}
}

// QueryOption configures query behavior through the functional options
// pattern.
type QueryOption func(*QueryOptions)

// QueryOptions contains the collaborators of a query. Nil fields are replaced
// by default implementations.
type QueryOptions struct {
	Catalog   Catalog
	Resolver  Resolver
	Comparer  Comparer
	Sorter    Sorter
	Projector Projector
	Decoder   Decoder
	Logger    Logger
}

// WithSorterResolver sets the resolver used to read order keys.
func WithSorterResolver(r Resolver) SorterOption {
	return func(so *SorterOptions) {
		so.Resolver = r
	}
}

// WithSorterComparer sets the comparer used to partition items.
func WithSorterComparer(c Comparer) SorterOption {
	return func(so *SorterOptions) {
		so.Comparer = c
	}
}

// WithSorterCoercer sets the coercer applied to order keys.
func WithSorterCoercer(c Coercer) SorterOption {
	return func(so *SorterOptions) {
		so.Coercer = c
	}
}

// SorterOption configures sorter behavior through the functional options
// pattern.
type SorterOption func(*SorterOptions)

// SorterOptions contains parameters for customizing sorter behavior.
type SorterOptions struct {
	Resolver Resolver
	Comparer Comparer
	Coercer  Coercer
}

// WithProjectorResolver sets the resolver used to read selected paths.
func WithProjectorResolver(r Resolver) ProjectorOption {
	return func(po *ProjectorOptions) {
		po.Resolver = r
	}
}

// ProjectorOption configures projector behavior through the functional options
// pattern.
type ProjectorOption func(*ProjectorOptions)

// ProjectorOptions contains parameters for customizing projector behavior.
type ProjectorOptions struct {
	Resolver Resolver
}

// WithResolverTagName sets the struct tag read when resolving struct fields.
func WithResolverTagName(t string) ResolverOption {
	return func(ro *ResolverOptions) {
		ro.TagName = t
	}
}

// ResolverOption configures resolver behavior through the functional options
// pattern.
type ResolverOption func(*ResolverOptions)

// ResolverOptions contains parameters for customizing resolver behavior.
type ResolverOptions struct {
	TagName string
}

// WithCatalogComparer sets the comparer used by the built-in comparison
// operators.
func WithCatalogComparer(c Comparer) CatalogOption {
	return func(co *CatalogOptions) {
		co.Comparer = c
	}
}

// CatalogOption configures catalog behavior through the functional options
// pattern.
type CatalogOption func(*CatalogOptions)

// CatalogOptions contains parameters for customizing catalog behavior.
type CatalogOptions struct {
	Comparer Comparer
}
