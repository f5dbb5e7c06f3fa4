// Package dyndb fornece uma abstração genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2), voltada para as tabelas do domínio de supply chain.
//
// Visão Geral:
// O pacote oferece a interface `Store[T]`, que simplifica operações CRUD,
// Update por expressão e Batch, eliminando a necessidade de lidar diretamente
// com os tipos de baixo nível do SDK (AttributeValue, etc.). Toda falha do
// provider é traduzida para a taxonomia do pacote faults: um item ausente vira
// NotFoundError, throttling vira ThrottledError, e assim por diante. Nunca um
// erro cru do SDK chega ao chamador.
//
// O `QueryBuilder[T]` permite construir consultas (`Query` e `Scan`) de forma
// fluente: `store.Query().KeyEqual("id", v).FilterEqual("status", s).Exec(ctx)`.
// A paginação usa tokens opacos (base64 do LastEvaluatedKey); `Pages` devolve
// um iterador lazy e restartável a partir de qualquer token.
//
// Exemplo:
//
//	type Supplier struct {
//		ID   string `dynamodbav:"supplier_id"`
//		Name string `dynamodbav:"name"`
//	}
//
//	cfg := dyndb.TableConfig{TableName: "Suppliers", HashKey: "supplier_id"}
//	store := dyndb.New[Supplier](client, cfg)
//
//	err := store.Put(ctx, Supplier{ID: "s1", Name: "Acme"})
//	s, err := store.Get(ctx, "s1", nil)
//	if faults.IsNotFound(err) { /* ... */ }
//
// O pacote não implementa retry local: o retryer do aws.Config fornecido pelo
// chamador é a única política de backoff em vigor.
package dyndb
