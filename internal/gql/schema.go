// Package gql exposes the catalog through a GraphQL schema. The type
// definitions live here, apart from the lookup logic in internal/book, so
// the schema shape and the catalog behavior can be tested independently.
package gql

import (
	"github.com/graphql-go/graphql"

	"bookcatalog/internal/book"
)

func newBookType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.String},
			"name":  &graphql.Field{Type: graphql.String},
			"genre": &graphql.Field{Type: graphql.String},
		},
	})
}

// NewSchema builds the executable schema over the given catalog service.
func NewSchema(svc *book.Service) (graphql.Schema, error) {
	bookType := newBookType()

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"book": &graphql.Field{
				Type: bookType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					b, err := svc.GetBookByID(p.Context, id)
					if err != nil {
						return nil, err
					}
					if b == nil {
						// no match renders as a null field, never an error
						return nil, nil
					}
					return b, nil
				},
			},
			"books": &graphql.Field{
				Type: graphql.NewList(bookType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.ListBooks(p.Context)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
