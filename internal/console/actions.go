package console

import (
	"context"
	"fmt"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/export"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

func (c *Console) addMenu(ctx context.Context) error {
	choice, err := c.submenu("ADD", "Book", "Magazine", "Collection")
	if err != nil {
		return err
	}

	var item media.Item
	switch choice {
	case 1:
		item, err = c.readBook()
	case 2:
		item, err = c.readMagazine()
	case 3:
		var title string
		title, err = c.prompt.String("Title: ")
		item = media.NewCollection(title)
	}
	if err != nil {
		return err
	}

	if err := c.svc.SaveItem(ctx, item); err != nil {
		return err
	}
	c.printf("Added: %s\n", item.Details())
	return nil
}

func (c *Console) readBook() (media.Item, error) {
	title, err := c.prompt.String("Title: ")
	if err != nil {
		return nil, err
	}
	author, err := c.prompt.String("Author: ")
	if err != nil {
		return nil, err
	}
	published, err := c.prompt.Date("Publication date (dd/mm/yyyy): ")
	if err != nil {
		return nil, err
	}
	publisher, err := c.prompt.String("Publisher: ")
	if err != nil {
		return nil, err
	}
	pages, err := c.prompt.Positive("Pages: ")
	if err != nil {
		return nil, err
	}
	return media.NewBook(title, author, published, publisher, pages), nil
}

func (c *Console) readMagazine() (media.Item, error) {
	title, err := c.prompt.String("Title: ")
	if err != nil {
		return nil, err
	}
	published, err := c.prompt.Date("Publication date (dd/mm/yyyy): ")
	if err != nil {
		return nil, err
	}
	publisher, err := c.prompt.String("Publisher: ")
	if err != nil {
		return nil, err
	}
	issue, err := c.prompt.Positive("Issue number: ")
	if err != nil {
		return nil, err
	}
	issn, err := c.prompt.Optional("ISSN (optional): ")
	if err != nil {
		return nil, err
	}
	return media.NewMagazine(title, published, publisher, issue, media.WithISSN(issn)), nil
}

func (c *Console) viewMenu(ctx context.Context) error {
	choice, err := c.submenu("VIEW ALL MEDIA", "Unsorted", "By date (newest first)", "By title")
	if err != nil {
		return err
	}
	sorts := []media.SortStrategy{media.Unsorted, media.SortByDateDesc, media.SortByTitle}
	c.list(c.svc.ListItems(ctx, sorts[choice-1]), "No media in the library.")
	return nil
}

func (c *Console) searchMenu(ctx context.Context) error {
	choice, err := c.submenu("SEARCH MEDIA", "By title", "By author (books only)", "By publication year", "By ID")
	if err != nil {
		return err
	}

	var results []media.Item
	switch choice {
	case 1:
		title, err := c.prompt.String("Title: ")
		if err != nil {
			return err
		}
		results = c.svc.FindByTitle(ctx, title)
	case 2:
		author, err := c.prompt.String("Author: ")
		if err != nil {
			return err
		}
		for _, b := range c.svc.FindBooksByAuthor(ctx, author) {
			results = append(results, b)
		}
	case 3:
		year, err := c.prompt.Int("Year: ")
		if err != nil {
			return err
		}
		results = c.svc.FindByPublicationYear(ctx, year)
	case 4:
		id, err := c.prompt.String("ID: ")
		if err != nil {
			return err
		}
		item, err := c.svc.FindItem(ctx, id)
		if err != nil {
			return err
		}
		results = []media.Item{item}
	}

	c.list(results, "No media found.")
	if len(results) == 0 {
		return nil
	}

	id, err := c.prompt.Optional("ID to delete (empty to skip): ")
	if err != nil || id == "" {
		return err
	}
	if err := c.svc.DeleteItem(ctx, id); err != nil {
		return err
	}
	c.printf("Deleted %s\n", id)
	return nil
}

func (c *Console) collectionMenu(ctx context.Context) error {
	choice, err := c.submenu("COLLECTIONS", "List collections", "View collection content", "Add item to collection", "Remove item from collection")
	if err != nil {
		return err
	}

	if choice == 1 {
		collections := c.svc.Collections(ctx)
		if len(collections) == 0 {
			c.println("\nNo collections.")
			return nil
		}
		c.println("\nCOLLECTIONS:")
		for _, col := range collections {
			c.printf("- [%s] %s\n", col.ID(), col.Details())
		}
		return nil
	}

	collectionID, err := c.prompt.String("Collection ID: ")
	if err != nil {
		return err
	}

	switch choice {
	case 2:
		items, err := c.svc.CollectionItems(ctx, collectionID)
		if err != nil {
			return err
		}
		c.list(items, "The collection is empty.")
	case 3:
		itemID, err := c.prompt.String("Item ID: ")
		if err != nil {
			return err
		}
		if err := c.svc.AddToCollection(ctx, collectionID, itemID); err != nil {
			return err
		}
		c.println("Item added to the collection.")
	case 4:
		itemID, err := c.prompt.String("Item ID: ")
		if err != nil {
			return err
		}
		if err := c.svc.RemoveFromCollection(ctx, collectionID, itemID); err != nil {
			return err
		}
		c.println("Item removed from the collection.")
	}
	return nil
}

func (c *Console) exportMenu(ctx context.Context) error {
	if c.exporter == nil {
		return fmt.Errorf("export is not configured")
	}

	kinds := media.Kinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.Label()
	}
	kindChoice, err := c.submenu("EXPORT: KIND", labels...)
	if err != nil {
		return err
	}

	formats := export.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	formatChoice, err := c.submenu("EXPORT: FORMAT", names...)
	if err != nil {
		return err
	}

	path, err := c.exporter.Export(ctx, c.svc.ListItems(ctx, media.Unsorted), kinds[kindChoice-1], formats[formatChoice-1])
	if err != nil {
		return err
	}
	c.printf("Exported to %s\n", path)
	return nil
}
