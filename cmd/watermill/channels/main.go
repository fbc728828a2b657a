package main

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	app "github.com/mateusmacedo/go-eventing/internal/application"
	"github.com/mateusmacedo/go-eventing/internal/infrastructure"
	pkgDomain "github.com/mateusmacedo/go-eventing/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-eventing/pkg/infrastructure"
	"github.com/mateusmacedo/go-eventing/pkg/infrastructure/channels/adapter"
	watermillLogAdapter "github.com/mateusmacedo/go-eventing/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-eventing/pkg/infrastructure/zaplogger/adapter"
)

func main() {
	// Criação de um novo logger
	appLogger, err := zapAdapter.NewZapAppLogger()
	if err != nil {
		panic(err)
	}

	// Configuração do adaptador de logger
	logger := watermillLogAdapter.NewWatermillLoggerAdapter(appLogger)

	// Configuração do publisher e subscriber em memória
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	// Configuração do repositório e dos adaptadores do módulo de mídia
	repository := infrastructure.NewInMemoryMediaRepository()
	thumbnails := infrastructure.NewInMemoryThumbnailGenerator()

	// Gerador de ID
	idGenerator := func() string {
		return uuid.New().String()
	}

	// Grafo de supersessão do módulo de mídia
	gb := pkgDomain.NewGraphBuilder()
	app.RegisterEventTypes(gb)

	graph, err := gb.Build()
	if err != nil {
		panic(err)
	}

	// Despacho local decorado com a publicação dos eventos em tópicos watermill
	registry := pkgInfra.NewInMemoryHandlerRegistry()
	registry.RegisterHandler(app.TypeMediaSaved, app.NewThumbnailHandler(thumbnails, appLogger))

	dispatcher := adapter.NewWatermillFanoutDispatcher(
		pubSub,
		pkgInfra.NewSequentialDispatcher(registry, appLogger),
		appLogger,
	)

	uowFactory := pkgInfra.NewUnitOfWorkFactory(pkgDomain.NewResolver(graph), dispatcher, appLogger)
	mediaService := app.NewMediaService(repository, uowFactory, idGenerator, appLogger)

	// Criando um contexto com timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Assinando o tópico antes do despacho para não perder mensagens
	messages, err := pubSub.Subscribe(ctx, string(app.TypeMediaSaved))
	if err != nil {
		appLogger.Error(ctx, "Erro ao assinar o tópico de mídias salvas", map[string]interface{}{
			"error": err,
		})
		return
	}

	// Subindo uma mídia: o refresh de cache disparado junto é coberto pelo
	// Saved e apenas um evento chega aos assinantes.
	asset, err := mediaService.Upload(ctx, app.UploadMediaData{
		FileName:  "capa-edicao-42.png",
		MimeType:  "image/png",
		SizeBytes: 512 * 1024,
	})
	if err != nil {
		appLogger.Error(ctx, "Erro ao subir mídia", map[string]interface{}{
			"error": err,
		})
		return
	}
	appLogger.Info(ctx, "Mídia enviada com sucesso", map[string]interface{}{"id": asset.ID})

	// Consumindo o envelope publicado no tópico em processo
	select {
	case msg := <-messages:
		appLogger.Info(ctx, "Evento recebido no tópico", map[string]interface{}{
			"topic":   string(app.TypeMediaSaved),
			"payload": string(msg.Payload),
		})
		msg.Ack()
	case <-ctx.Done():
		appLogger.Error(ctx, "Nenhum evento recebido no tópico", map[string]interface{}{
			"error": ctx.Err(),
		})
		return
	}

	// Consultando a mídia enviada
	found, err := mediaService.Get(ctx, asset.ID)
	if err != nil {
		appLogger.Error(ctx, "Erro ao consultar mídia", map[string]interface{}{
			"error": err,
		})
		return
	}
	appLogger.Info(ctx, "Consulta de mídia concluída com sucesso", map[string]interface{}{
		"media": found,
	})

	appLogger.Info(ctx, "Miniaturas geradas por mídia", map[string]interface{}{
		"generations": thumbnails.Generations(),
	})
}
