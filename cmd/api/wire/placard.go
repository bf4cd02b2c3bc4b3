//go:build wireinject
// +build wireinject

package wire

import (
	"placard-server/internal/infra/async"
	"placard-server/internal/infra/cache"
	"placard-server/internal/placard/httpapi"
	"placard-server/internal/placard/usecases"
	"placard-server/internal/renderer"

	"github.com/google/wire"
)

func InitializeRendererClient() (*renderer.Client, error) {
	wire.Build(
		provideAppConfig,
		provideRendererClient,
	)
	return nil, nil
}

func InitializeTemplateService(client *renderer.Client) (*usecases.SimpleTemplateService, error) {
	wire.Build(
		wire.Bind(new(usecases.ProfileRepository), new(*renderer.Client)),
		usecases.NewTemplateService,
	)
	return nil, nil
}

func InitializeCatalogService(client *renderer.Client) (*usecases.SimpleCatalogService, error) {
	wire.Build(
		wire.Bind(new(usecases.PlacardRenderer), new(*renderer.Client)),
		usecases.NewCatalogService,
	)
	return nil, nil
}

func InitializeReviewService(
	catalog usecases.CatalogService,
	templates usecases.TemplateService,
	client *renderer.Client,
	broker async.InternalBroker,
) (*usecases.SimpleReviewService, error) {
	wire.Build(
		wire.Bind(new(usecases.PlacardRenderer), new(*renderer.Client)),
		usecases.NewReviewService,
	)
	return nil, nil
}

func InitializeAssetService(client *renderer.Client) (*usecases.SimpleAssetCatalogService, error) {
	wire.Build(
		provideCache,
		wire.Bind(new(cache.Cache), new(*cache.RistrettoCache)),
		wire.Bind(new(usecases.AssetRepository), new(*renderer.Client)),
		usecases.NewAssetCatalogService,
	)
	return nil, nil
}

func InitializeAssetRefreshWorker(assets usecases.AssetCatalogService) (*usecases.AssetRefreshWorker, error) {
	wire.Build(
		provideAppConfig,
		provideTicker,
		provideRefreshSchedule,
		usecases.NewAssetRefreshWorker,
	)
	return nil, nil
}

func InitializeTemplateController(service usecases.TemplateService) (*httpapi.TemplateController, error) {
	wire.Build(httpapi.NewTemplateController)
	return nil, nil
}

func InitializeProfileController(service usecases.TemplateService) (*httpapi.ProfileController, error) {
	wire.Build(httpapi.NewProfileController)
	return nil, nil
}

func InitializeEditorController(templates usecases.TemplateService) (*httpapi.EditorController, error) {
	wire.Build(
		usecases.NewEditorService,
		wire.Bind(new(usecases.EditorService), new(*usecases.SimpleEditorService)),
		httpapi.NewEditorController,
	)
	return nil, nil
}

func InitializeCatalogController(service usecases.CatalogService) (*httpapi.CatalogController, error) {
	wire.Build(httpapi.NewCatalogController)
	return nil, nil
}

func InitializePreviewController(
	catalog usecases.CatalogService,
	templates usecases.TemplateService,
	client *renderer.Client,
) (*httpapi.PreviewController, error) {
	wire.Build(
		wire.Bind(new(usecases.PlacardRenderer), new(*renderer.Client)),
		usecases.NewPreviewService,
		wire.Bind(new(usecases.PreviewService), new(*usecases.SimplePreviewService)),
		httpapi.NewPreviewController,
	)
	return nil, nil
}

func InitializeReviewController(service usecases.ReviewService) (*httpapi.ReviewController, error) {
	wire.Build(httpapi.NewReviewController)
	return nil, nil
}

func InitializeAssetController(service usecases.AssetCatalogService) (*httpapi.AssetController, error) {
	wire.Build(httpapi.NewAssetController)
	return nil, nil
}

func InitializeReviewEventsWebSocketController(broker async.InternalBroker) (*httpapi.ReviewEventsWebSocketController, error) {
	wire.Build(httpapi.NewReviewEventsWebSocketController)
	return nil, nil
}
