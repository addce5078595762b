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
	"github.com/edtech-ng/question-bank/gen/ent/generalknowledgequestion"
	"github.com/edtech-ng/question-bank/gen/ent/predicate"
	"github.com/google/uuid"
)

// GeneralKnowledgeQuestionQuery is the builder for querying GeneralKnowledgeQuestion entities.
type GeneralKnowledgeQuestionQuery struct {
	config
	ctx        *QueryContext
	order      []generalknowledgequestion.OrderOption
	inters     []Interceptor
	predicates []predicate.GeneralKnowledgeQuestion
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GeneralKnowledgeQuestionQuery builder.
func (_q *GeneralKnowledgeQuestionQuery) Where(ps ...predicate.GeneralKnowledgeQuestion) *GeneralKnowledgeQuestionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GeneralKnowledgeQuestionQuery) Limit(limit int) *GeneralKnowledgeQuestionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GeneralKnowledgeQuestionQuery) Offset(offset int) *GeneralKnowledgeQuestionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GeneralKnowledgeQuestionQuery) Unique(unique bool) *GeneralKnowledgeQuestionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GeneralKnowledgeQuestionQuery) Order(o ...generalknowledgequestion.OrderOption) *GeneralKnowledgeQuestionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first GeneralKnowledgeQuestion entity from the query.
// Returns a *NotFoundError when no GeneralKnowledgeQuestion was found.
func (_q *GeneralKnowledgeQuestionQuery) First(ctx context.Context) (*GeneralKnowledgeQuestion, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{generalknowledgequestion.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) FirstX(ctx context.Context) *GeneralKnowledgeQuestion {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GeneralKnowledgeQuestion ID from the query.
// Returns a *NotFoundError when no GeneralKnowledgeQuestion ID was found.
func (_q *GeneralKnowledgeQuestionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{generalknowledgequestion.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GeneralKnowledgeQuestion entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GeneralKnowledgeQuestion entity is found.
// Returns a *NotFoundError when no GeneralKnowledgeQuestion entities are found.
func (_q *GeneralKnowledgeQuestionQuery) Only(ctx context.Context) (*GeneralKnowledgeQuestion, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{generalknowledgequestion.Label}
	default:
		return nil, &NotSingularError{generalknowledgequestion.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) OnlyX(ctx context.Context) *GeneralKnowledgeQuestion {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GeneralKnowledgeQuestion ID in the query.
// Returns a *NotSingularError when more than one GeneralKnowledgeQuestion ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GeneralKnowledgeQuestionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{generalknowledgequestion.Label}
	default:
		err = &NotSingularError{generalknowledgequestion.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GeneralKnowledgeQuestions.
func (_q *GeneralKnowledgeQuestionQuery) All(ctx context.Context) ([]*GeneralKnowledgeQuestion, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GeneralKnowledgeQuestion, *GeneralKnowledgeQuestionQuery]()
	return withInterceptors[[]*GeneralKnowledgeQuestion](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) AllX(ctx context.Context) []*GeneralKnowledgeQuestion {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GeneralKnowledgeQuestion IDs.
func (_q *GeneralKnowledgeQuestionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(generalknowledgequestion.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GeneralKnowledgeQuestionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GeneralKnowledgeQuestionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GeneralKnowledgeQuestionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *GeneralKnowledgeQuestionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GeneralKnowledgeQuestionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GeneralKnowledgeQuestionQuery) Clone() *GeneralKnowledgeQuestionQuery {
	if _q == nil {
		return nil
	}
	return &GeneralKnowledgeQuestionQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]generalknowledgequestion.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.GeneralKnowledgeQuestion{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		QuestionNumber string `json:"question_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GeneralKnowledgeQuestion.Query().
//		GroupBy(generalknowledgequestion.FieldQuestionNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GeneralKnowledgeQuestionQuery) GroupBy(field string, fields ...string) *GeneralKnowledgeQuestionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GeneralKnowledgeQuestionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = generalknowledgequestion.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		QuestionNumber string `json:"question_number,omitempty"`
//	}
//
//	client.GeneralKnowledgeQuestion.Query().
//		Select(generalknowledgequestion.FieldQuestionNumber).
//		Scan(ctx, &v)
func (_q *GeneralKnowledgeQuestionQuery) Select(fields ...string) *GeneralKnowledgeQuestionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GeneralKnowledgeQuestionSelect{GeneralKnowledgeQuestionQuery: _q}
	sbuild.label = generalknowledgequestion.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GeneralKnowledgeQuestionSelect configured with the given aggregations.
func (_q *GeneralKnowledgeQuestionQuery) Aggregate(fns ...AggregateFunc) *GeneralKnowledgeQuestionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GeneralKnowledgeQuestionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !generalknowledgequestion.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *GeneralKnowledgeQuestionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GeneralKnowledgeQuestion, error) {
	var (
		nodes = []*GeneralKnowledgeQuestion{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GeneralKnowledgeQuestion).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GeneralKnowledgeQuestion{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *GeneralKnowledgeQuestionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *GeneralKnowledgeQuestionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(generalknowledgequestion.Table, generalknowledgequestion.Columns, sqlgraph.NewFieldSpec(generalknowledgequestion.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generalknowledgequestion.FieldID)
		for i := range fields {
			if fields[i] != generalknowledgequestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *GeneralKnowledgeQuestionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(generalknowledgequestion.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = generalknowledgequestion.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GeneralKnowledgeQuestionGroupBy is the group-by builder for GeneralKnowledgeQuestion entities.
type GeneralKnowledgeQuestionGroupBy struct {
	selector
	build *GeneralKnowledgeQuestionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GeneralKnowledgeQuestionGroupBy) Aggregate(fns ...AggregateFunc) *GeneralKnowledgeQuestionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GeneralKnowledgeQuestionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GeneralKnowledgeQuestionQuery, *GeneralKnowledgeQuestionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GeneralKnowledgeQuestionGroupBy) sqlScan(ctx context.Context, root *GeneralKnowledgeQuestionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GeneralKnowledgeQuestionSelect is the builder for selecting fields of GeneralKnowledgeQuestion entities.
type GeneralKnowledgeQuestionSelect struct {
	*GeneralKnowledgeQuestionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GeneralKnowledgeQuestionSelect) Aggregate(fns ...AggregateFunc) *GeneralKnowledgeQuestionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GeneralKnowledgeQuestionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GeneralKnowledgeQuestionQuery, *GeneralKnowledgeQuestionSelect](ctx, _s.GeneralKnowledgeQuestionQuery, _s, _s.inters, v)
}

func (_s *GeneralKnowledgeQuestionSelect) sqlScan(ctx context.Context, root *GeneralKnowledgeQuestionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
