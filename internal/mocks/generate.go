package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name DocumentFetcher --dir ../usecase --output usecase --outpkg usecasemock --filename document_fetcher_mock.go
