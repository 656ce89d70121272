// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studymap/studymap/ent/graphsnapshot"
	"github.com/studymap/studymap/ent/predicate"
)

// GraphSnapshotQuery is the builder for querying GraphSnapshot entities.
type GraphSnapshotQuery struct {
	config
	ctx        *QueryContext
	order      []graphsnapshot.OrderOption
	inters     []Interceptor
	predicates []predicate.GraphSnapshot
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GraphSnapshotQuery builder.
func (gsq *GraphSnapshotQuery) Where(ps ...predicate.GraphSnapshot) *GraphSnapshotQuery {
	gsq.predicates = append(gsq.predicates, ps...)
	return gsq
}

// Limit the number of records to be returned by this query.
func (gsq *GraphSnapshotQuery) Limit(limit int) *GraphSnapshotQuery {
	gsq.ctx.Limit = &limit
	return gsq
}

// Offset to start from.
func (gsq *GraphSnapshotQuery) Offset(offset int) *GraphSnapshotQuery {
	gsq.ctx.Offset = &offset
	return gsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (gsq *GraphSnapshotQuery) Unique(unique bool) *GraphSnapshotQuery {
	gsq.ctx.Unique = &unique
	return gsq
}

// Order specifies how the records should be ordered.
func (gsq *GraphSnapshotQuery) Order(o ...graphsnapshot.OrderOption) *GraphSnapshotQuery {
	gsq.order = append(gsq.order, o...)
	return gsq
}

// First returns the first GraphSnapshot entity from the query.
// Returns a *NotFoundError when no GraphSnapshot was found.
func (gsq *GraphSnapshotQuery) First(ctx context.Context) (*GraphSnapshot, error) {
	nodes, err := gsq.Limit(1).All(setContextOp(ctx, gsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{graphsnapshot.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) FirstX(ctx context.Context) *GraphSnapshot {
	node, err := gsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GraphSnapshot ID from the query.
// Returns a *NotFoundError when no GraphSnapshot ID was found.
func (gsq *GraphSnapshotQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = gsq.Limit(1).IDs(setContextOp(ctx, gsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{graphsnapshot.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) FirstIDX(ctx context.Context) int {
	id, err := gsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GraphSnapshot entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GraphSnapshot entity is found.
// Returns a *NotFoundError when no GraphSnapshot entities are found.
func (gsq *GraphSnapshotQuery) Only(ctx context.Context) (*GraphSnapshot, error) {
	nodes, err := gsq.Limit(2).All(setContextOp(ctx, gsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{graphsnapshot.Label}
	default:
		return nil, &NotSingularError{graphsnapshot.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) OnlyX(ctx context.Context) *GraphSnapshot {
	node, err := gsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GraphSnapshot ID in the query.
// Returns a *NotSingularError when more than one GraphSnapshot ID is found.
// Returns a *NotFoundError when no entities are found.
func (gsq *GraphSnapshotQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = gsq.Limit(2).IDs(setContextOp(ctx, gsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{graphsnapshot.Label}
	default:
		err = &NotSingularError{graphsnapshot.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) OnlyIDX(ctx context.Context) int {
	id, err := gsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GraphSnapshots.
func (gsq *GraphSnapshotQuery) All(ctx context.Context) ([]*GraphSnapshot, error) {
	ctx = setContextOp(ctx, gsq.ctx, ent.OpQueryAll)
	if err := gsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GraphSnapshot, *GraphSnapshotQuery]()
	return withInterceptors[[]*GraphSnapshot](ctx, gsq, qr, gsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) AllX(ctx context.Context) []*GraphSnapshot {
	nodes, err := gsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GraphSnapshot IDs.
func (gsq *GraphSnapshotQuery) IDs(ctx context.Context) (ids []int, err error) {
	if gsq.ctx.Unique == nil && gsq.path != nil {
		gsq.Unique(true)
	}
	ctx = setContextOp(ctx, gsq.ctx, ent.OpQueryIDs)
	if err = gsq.Select(graphsnapshot.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) IDsX(ctx context.Context) []int {
	ids, err := gsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (gsq *GraphSnapshotQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, gsq.ctx, ent.OpQueryCount)
	if err := gsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, gsq, querierCount[*GraphSnapshotQuery](), gsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) CountX(ctx context.Context) int {
	count, err := gsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (gsq *GraphSnapshotQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, gsq.ctx, ent.OpQueryExist)
	switch _, err := gsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (gsq *GraphSnapshotQuery) ExistX(ctx context.Context) bool {
	exist, err := gsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GraphSnapshotQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (gsq *GraphSnapshotQuery) Clone() *GraphSnapshotQuery {
	if gsq == nil {
		return nil
	}
	return &GraphSnapshotQuery{
		config:     gsq.config,
		ctx:        gsq.ctx.Clone(),
		order:      append([]graphsnapshot.OrderOption{}, gsq.order...),
		inters:     append([]Interceptor{}, gsq.inters...),
		predicates: append([]predicate.GraphSnapshot{}, gsq.predicates...),
		// clone intermediate query.
		sql:  gsq.sql.Clone(),
		path: gsq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ClassID string `json:"class_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GraphSnapshot.Query().
//		GroupBy(graphsnapshot.FieldClassID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (gsq *GraphSnapshotQuery) GroupBy(field string, fields ...string) *GraphSnapshotGroupBy {
	gsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GraphSnapshotGroupBy{build: gsq}
	grbuild.flds = &gsq.ctx.Fields
	grbuild.label = graphsnapshot.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ClassID string `json:"class_id,omitempty"`
//	}
//
//	client.GraphSnapshot.Query().
//		Select(graphsnapshot.FieldClassID).
//		Scan(ctx, &v)
func (gsq *GraphSnapshotQuery) Select(fields ...string) *GraphSnapshotSelect {
	gsq.ctx.Fields = append(gsq.ctx.Fields, fields...)
	sbuild := &GraphSnapshotSelect{GraphSnapshotQuery: gsq}
	sbuild.label = graphsnapshot.Label
	sbuild.flds, sbuild.scan = &gsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GraphSnapshotSelect configured with the given aggregations.
func (gsq *GraphSnapshotQuery) Aggregate(fns ...AggregateFunc) *GraphSnapshotSelect {
	return gsq.Select().Aggregate(fns...)
}

func (gsq *GraphSnapshotQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range gsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, gsq); err != nil {
				return err
			}
		}
	}
	for _, f := range gsq.ctx.Fields {
		if !graphsnapshot.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if gsq.path != nil {
		prev, err := gsq.path(ctx)
		if err != nil {
			return err
		}
		gsq.sql = prev
	}
	return nil
}

func (gsq *GraphSnapshotQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GraphSnapshot, error) {
	var (
		nodes = []*GraphSnapshot{}
		_spec = gsq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GraphSnapshot).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GraphSnapshot{config: gsq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, gsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (gsq *GraphSnapshotQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := gsq.querySpec()
	_spec.Node.Columns = gsq.ctx.Fields
	if len(gsq.ctx.Fields) > 0 {
		_spec.Unique = gsq.ctx.Unique != nil && *gsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, gsq.driver, _spec)
}

func (gsq *GraphSnapshotQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(graphsnapshot.Table, graphsnapshot.Columns, sqlgraph.NewFieldSpec(graphsnapshot.FieldID, field.TypeInt))
	_spec.From = gsq.sql
	if unique := gsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if gsq.path != nil {
		_spec.Unique = true
	}
	if fields := gsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphsnapshot.FieldID)
		for i := range fields {
			if fields[i] != graphsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := gsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := gsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := gsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := gsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (gsq *GraphSnapshotQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(gsq.driver.Dialect())
	t1 := builder.Table(graphsnapshot.Table)
	columns := gsq.ctx.Fields
	if len(columns) == 0 {
		columns = graphsnapshot.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if gsq.sql != nil {
		selector = gsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if gsq.ctx.Unique != nil && *gsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range gsq.predicates {
		p(selector)
	}
	for _, p := range gsq.order {
		p(selector)
	}
	if offset := gsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := gsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GraphSnapshotGroupBy is the group-by builder for GraphSnapshot entities.
type GraphSnapshotGroupBy struct {
	selector
	build *GraphSnapshotQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (gsgb *GraphSnapshotGroupBy) Aggregate(fns ...AggregateFunc) *GraphSnapshotGroupBy {
	gsgb.fns = append(gsgb.fns, fns...)
	return gsgb
}

// Scan applies the selector query and scans the result into the given value.
func (gsgb *GraphSnapshotGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, gsgb.build.ctx, ent.OpQueryGroupBy)
	if err := gsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GraphSnapshotQuery, *GraphSnapshotGroupBy](ctx, gsgb.build, gsgb, gsgb.build.inters, v)
}

func (gsgb *GraphSnapshotGroupBy) sqlScan(ctx context.Context, root *GraphSnapshotQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(gsgb.fns))
	for _, fn := range gsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*gsgb.flds)+len(gsgb.fns))
		for _, f := range *gsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*gsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := gsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GraphSnapshotSelect is the builder for selecting fields of GraphSnapshot entities.
type GraphSnapshotSelect struct {
	*GraphSnapshotQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (gss *GraphSnapshotSelect) Aggregate(fns ...AggregateFunc) *GraphSnapshotSelect {
	gss.fns = append(gss.fns, fns...)
	return gss
}

// Scan applies the selector query and scans the result into the given value.
func (gss *GraphSnapshotSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, gss.ctx, ent.OpQuerySelect)
	if err := gss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GraphSnapshotQuery, *GraphSnapshotSelect](ctx, gss.GraphSnapshotQuery, gss, gss.inters, v)
}

func (gss *GraphSnapshotSelect) sqlScan(ctx context.Context, root *GraphSnapshotQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(gss.fns))
	for _, fn := range gss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*gss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := gss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
